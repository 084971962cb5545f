package router

import (
	"net/http"

	"github.com/deppfellow/hello-backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Greeting.Handler, h.Greeting.Root, http.StatusOK))

	api := r.Group("/api")

	api.GET("/hello", handler.Handle(h.Greeting.Handler, h.Greeting.Hello, http.StatusOK))

	api.GET("/multiply/:id", handler.Handle(h.Number.Handler, h.Number.Multiply, http.StatusOK))
	api.GET("/divide/:id", handler.Handle(h.Number.Handler, h.Number.Divide, http.StatusOK))

	api.GET("/count/:text", handler.Handle(h.Text.Handler, h.Text.Count, http.StatusOK))
	api.POST("/echo", handler.Handle(h.Text.Handler, h.Text.Echo, http.StatusOK))
}
