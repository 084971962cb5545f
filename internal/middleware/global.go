package middleware

import (
	"net/http"

	"github.com/deppfellow/hello-backend/internal/errs"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the global middleware group.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORSAllowMethods is every method a permitted origin may use.
var CORSAllowMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
}

// CORS lets the configured frontend origins call the API with credentials,
// any method and any header. Leaving AllowHeaders empty makes Echo reflect
// Access-Control-Request-Headers on preflight. Origins outside the list get
// no Access-Control-Allow-Origin header, so browsers block the response.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods:     CORSAllowMethods,
		AllowCredentials: true,
		ExposeHeaders:    []string{RequestIDHeader},
	})
}

// RequestLogger writes one "API" log line per request, with severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The global error handler has not written the response yet when a
			// handler returns an error, so take the status from the error.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler renders every error returned from the handler chain as
// an errs.HTTPError JSON body.
//
// Mapping:
//   - *errs.HTTPError: rendered as is.
//   - *echo.HTTPError 404: "Route not found".
//   - other *echo.HTTPError: status kept, code derived from status text.
//   - anything else: 500 with a generic message; the cause is only logged.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound:
			httpErr = errs.NewNotFoundError("Route not found", false, nil)

		case errors.As(err, &echoErr):
			message, ok := echoErr.Message.(string)
			if !ok {
				message = http.StatusText(echoErr.Code)
			}
			httpErr = errs.NewStatusError(echoErr.Code, message)

		default:
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := *GetLogger(c)

	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}

	e.Err(originalErr).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}
