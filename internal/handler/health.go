package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/hello-backend/internal/middleware"
	"github.com/deppfellow/hello-backend/internal/model"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports liveness. The service has no dependencies to probe,
// so a response at all means healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Msg("health check passed")

	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
	})
}
