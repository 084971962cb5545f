// Package handler adapts HTTP requests to the service layer.
//
// Each endpoint is a typed function from a bound request to a response
// value; Handle wraps it with binding, validation, logging, tracing and
// JSON encoding.
package handler
