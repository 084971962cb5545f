// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for invalid input or HTTPError for API responses)
// so the client receives meaningful and consistent error messages.
package errs
