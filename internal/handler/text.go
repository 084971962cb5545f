package handler

import (
	"github.com/deppfellow/hello-backend/internal/model"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// TextHandler serves the string endpoints.
type TextHandler struct {
	Handler
	textService *service.TextService
}

func NewTextHandler(s *server.Server, textService *service.TextService) *TextHandler {
	return &TextHandler{
		Handler:     NewHandler(s),
		textService: textService,
	}
}

// Count serves GET /api/count/:text.
func (h *TextHandler) Count(c echo.Context, req *model.CountRequest) (*model.CountResponse, error) {
	return &model.CountResponse{
		Count: h.textService.Count(c.Request().Context(), req.Text),
	}, nil
}

// Echo serves POST /api/echo.
func (h *TextHandler) Echo(c echo.Context, req *model.EchoRequest) (*model.MessageResponse, error) {
	return &model.MessageResponse{
		Message: h.textService.Echo(c.Request().Context(), req.Message),
	}, nil
}
