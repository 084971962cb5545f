// Package middleware holds the Echo middleware chain: CORS, secure
// headers, panic recovery, request ids, New Relic tracing, the
// request-scoped logger and the global error handler.
package middleware
