package middleware

import (
	"github.com/deppfellow/hello-backend/internal/server"
)

// Middlewares groups the middleware families the router installs.
type Middlewares struct {
	Global *GlobalMiddlewares

	ContextEnhancer *ContextEnhancer

	Tracing *TracingMiddleware
}

// NewMiddlewares constructs every middleware group around the shared Server.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
	}
}
