package service

import (
	"context"

	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/rs/zerolog"
)

const (
	RootGreeting  = "FastAPI hello!"
	HelloGreeting = "Hello kenta"
)

// GreetingService returns the fixed greetings.
type GreetingService struct {
	server *server.Server
}

func NewGreetingService(s *server.Server) *GreetingService {
	return &GreetingService{server: s}
}

// Root returns the greeting served at "/".
func (g *GreetingService) Root(ctx context.Context) string {
	zerolog.Ctx(ctx).Debug().Str("operation", "root").Msg("greeting")
	return RootGreeting
}

// Hello returns the fixed greeting served at "/api/hello".
func (g *GreetingService) Hello(ctx context.Context) string {
	zerolog.Ctx(ctx).Debug().Str("operation", "hello").Msg("greeting")
	return HelloGreeting
}
