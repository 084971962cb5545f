package errs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "id", "error": "must be at least -4611686018427387904" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "id").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// Action describes an optional "what the client should do next" instruction.
// No endpoint sets one yet, so it always renders as null.
type Action struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// HTTPError is the error body every failed request renders.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the client should show Message instead of its own copy.
//   - Errors: per-field validation errors.
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
//
// A Caser keeps state, so one is built per call.
func MakeUpperCaseWithUnderscores(str string) string {
	return cases.Upper(language.Und).String(strings.ReplaceAll(str, " ", "_"))
}
