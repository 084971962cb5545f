package service

import (
	"github.com/deppfellow/hello-backend/internal/server"
)

// Services is the container of every service, built once at startup and
// handed to the handlers.
type Services struct {
	Greeting *GreetingService
	Number   *NumberService
	Text     *TextService
}

// NewServices constructs all services around the shared Server.
func NewServices(s *server.Server) *Services {
	return &Services{
		Greeting: NewGreetingService(s),
		Number:   NewNumberService(s),
		Text:     NewTextService(s),
	}
}
