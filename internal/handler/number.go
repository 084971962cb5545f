package handler

import (
	"github.com/deppfellow/hello-backend/internal/errs"
	"github.com/deppfellow/hello-backend/internal/model"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NumberHandler serves the integer endpoints.
type NumberHandler struct {
	Handler
	numberService *service.NumberService
}

func NewNumberHandler(s *server.Server, numberService *service.NumberService) *NumberHandler {
	return &NumberHandler{
		Handler:       NewHandler(s),
		numberService: numberService,
	}
}

// Multiply serves GET /api/multiply/:id.
func (h *NumberHandler) Multiply(c echo.Context, req *model.NumberRequest) (*model.DoubleResponse, error) {
	return &model.DoubleResponse{
		DoubledValue: h.numberService.Double(c.Request().Context(), req.Value()),
	}, nil
}

// Divide serves GET /api/divide/:id.
func (h *NumberHandler) Divide(c echo.Context, req *model.NumberRequest) (*model.HalfResponse, error) {
	half, err := h.numberService.Halve(c.Request().Context(), req.Value())
	if errors.Is(err, service.ErrHalfOutOfRange) {
		return nil, errs.ValidationError([]errs.FieldError{{Field: "id", Error: "is too large to halve"}})
	}
	if err != nil {
		return nil, err
	}

	return &model.HalfResponse{HalfValue: half}, nil
}
