package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the embedded API document and its docs page.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec serves the OpenAPI 3 document describing the API.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, static.OpenAPISpec)
}

// ServeOpenAPIUI serves the HTML page that renders /openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, static.OpenAPIUI); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
