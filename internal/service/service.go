// Package service holds the computations behind each endpoint.
//
// Every method is pure: it reads its arguments, returns a value and
// writes one debug log line through the request-scoped logger in ctx.
package service
