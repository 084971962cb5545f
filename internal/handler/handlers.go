package handler

import (
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/service"
)

// Handlers groups every HTTP handler so the router can register them.
type Handlers struct {
	Health   *HealthHandler   // Health serves the monitoring endpoint.
	OpenAPI  *OpenAPIHandler  // OpenAPI serves the API document and docs page.
	Greeting *GreetingHandler // Greeting serves "/" and "/api/hello".
	Number   *NumberHandler   // Number serves multiply and divide.
	Text     *TextHandler     // Text serves count and echo.
}

// NewHandlers constructs all handlers around the shared Server and services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Greeting: NewGreetingHandler(s, services.Greeting),
		Number:   NewNumberHandler(s, services.Number),
		Text:     NewTextHandler(s, services.Text),
	}
}
