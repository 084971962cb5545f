// Package validation binds request input (path params, JSON bodies)
// into typed structs and checks them against their rules.
//
// Request types implement Validatable; most do so by delegating to
// Struct, which runs go-playground/validator tags.
package validation

import "github.com/go-playground/validator/v10"

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the `validate:"..."` tags on v.
func Struct(v any) error {
	return validate.Struct(v)
}
