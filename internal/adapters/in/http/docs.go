package http

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPISpec []byte

// apiDoc serves the embedded OpenAPI document to echo-swagger.
type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(openAPISpec)
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}
