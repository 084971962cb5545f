package model

import (
	"unicode/utf8"

	"github.com/deppfellow/hello-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// CountRequest carries the decoded text path parameter.
type CountRequest struct {
	Text string `param:"text"`
}

func (r *CountRequest) Validate() error {
	if !utf8.ValidString(r.Text) {
		return validation.CustomValidationErrors{{Field: "text", Message: "must be valid UTF-8"}}
	}
	return nil
}

// CountResponse is the body of GET /api/count/:text.
type CountResponse struct {
	Count int `json:"count"`
}

// EchoRequest is the POST /api/echo body. Message may be absent or null.
type EchoRequest struct {
	Message *string `json:"message"`
}

// Bind reads the JSON body only.
func (r *EchoRequest) Bind(c echo.Context) error {
	return validation.BindJSONBody(c, r)
}

func (r *EchoRequest) Validate() error {
	return nil
}
