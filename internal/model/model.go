// Package model holds the request and response shapes of the API.
//
// Request types are bound by Echo (`param` tags for path parameters,
// `json` tags for bodies) and implement validation.Validatable. Path
// parameters are the only input unless a type implements
// validation.Binder.
package model

import "github.com/labstack/echo/v4"

// EmptyRequest is used by endpoints that take no input. It binds nothing,
// so headers, query strings and bodies never affect the response.
type EmptyRequest struct{}

func (r *EmptyRequest) Bind(echo.Context) error {
	return nil
}

func (r *EmptyRequest) Validate() error {
	return nil
}

// MessageResponse is shared by the greeting and echo endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
