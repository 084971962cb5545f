package handler

import (
	"github.com/deppfellow/hello-backend/internal/model"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// GreetingHandler serves "/" and "/api/hello".
type GreetingHandler struct {
	Handler
	greetingService *service.GreetingService
}

func NewGreetingHandler(s *server.Server, greetingService *service.GreetingService) *GreetingHandler {
	return &GreetingHandler{
		Handler:         NewHandler(s),
		greetingService: greetingService,
	}
}

// Root serves GET /.
func (h *GreetingHandler) Root(c echo.Context, _ *model.EmptyRequest) (*model.MessageResponse, error) {
	return &model.MessageResponse{
		Message: h.greetingService.Root(c.Request().Context()),
	}, nil
}

// Hello serves GET /api/hello.
func (h *GreetingHandler) Hello(c echo.Context, _ *model.EmptyRequest) (*model.MessageResponse, error) {
	return &model.MessageResponse{
		Message: h.greetingService.Hello(c.Request().Context()),
	}, nil
}
