// Package static embeds the API documentation assets.
package static

import _ "embed"

//go:embed openapi.json
var OpenAPISpec []byte

//go:embed openapi.html
var OpenAPIUI []byte
