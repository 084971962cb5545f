// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/hello-backend/internal/handler"
	"github.com/deppfellow/hello-backend/internal/middleware"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the full middleware chain and
// every route registered.
//
// Middleware order matters:
//  1. CORS answers preflight requests before anything else runs.
//  2. RequestID must precede the context enhancer and the request logger.
//  3. New Relic starts the transaction the context enhancer reads trace ids from.
//  4. Recover sits innermost so panics become errors the chain can log.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	registerAPIRoutes(router, h)

	return router
}
