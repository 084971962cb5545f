package router

import (
	"github.com/deppfellow/hello-backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API
// proper: health and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
