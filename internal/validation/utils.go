package validation

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/deppfellow/hello-backend/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by every request type a handler accepts.
type Validatable interface {
	Validate() error
}

// Binder is implemented by request types that read something other than
// path parameters, such as a JSON body. Request types without a Bind
// method are filled from path parameters only.
type Binder interface {
	Bind(c echo.Context) error
}

// CustomValidationError is a rule failure that validator tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is returned from Validate methods for rules
// checked in code. Each entry becomes one errs.FieldError.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate fills payload, then runs its Validate method.
//
// Payloads implementing Binder bind themselves; all others get path
// parameters only, so a request body can never change a path-driven result.
// Bind failures keep Echo's status (400, 415, ...); rule failures are a 400
// errs.ValidationError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var err error
	if binder, ok := payload.(Binder); ok {
		err = binder.Bind(c)
	} else {
		err = BindPathParams(c, payload)
	}

	if err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return errs.ValidationError(extractValidationError(err))
	}

	return nil
}

// BindPathParams fills the `param` tagged fields of payload.
//
// Echo routes on URL.RawPath whenever the request carries one (for example
// "%2F" or "%41" in a segment), and then hands out the parameter still
// escaped. Those values are unescaped here so handlers always see decoded
// text.
func BindPathParams(c echo.Context, payload any) error {
	if c.Request().URL.RawPath != "" {
		values := make([]string, 0, len(c.ParamValues()))
		for _, raw := range c.ParamValues() {
			value, err := url.PathUnescape(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}
			values = append(values, value)
		}
		c.SetParamValues(values...)
	}

	return (&echo.DefaultBinder{}).BindPathParams(c, payload)
}

// BindJSONBody decodes the request body into payload.
//
// An empty body leaves payload untouched. A missing Content-Type is read
// as JSON; any other non-JSON type is rejected with 415.
func BindJSONBody(c echo.Context, payload any) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if req.Header.Get(echo.HeaderContentType) != "" {
		return (&echo.DefaultBinder{}).BindBody(c, payload)
	}

	if err := c.Echo().JSONSerializer.Deserialize(c, payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	return nil
}

// bindError turns a binder failure into an *errs.HTTPError, keeping the
// status Echo chose and dropping its "code=..., message=..." wrapping.
func bindError(err error) *errs.HTTPError {
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return errs.NewBadRequestError(err.Error(), false, nil, nil, nil)
	}

	message, ok := echoErr.Message.(string)
	if !ok {
		message = err.Error()
	}

	if echoErr.Code != http.StatusBadRequest {
		return errs.NewStatusError(echoErr.Code, message)
	}

	return errs.NewBadRequestError(message, false, nil, nil, nil)
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
