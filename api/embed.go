// Package api holds the OpenAPI document of the client API.
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed registry.openapi.yaml
var document []byte

// Load parses and validates the embedded document. Servers are cleared so
// that routes match regardless of the host the node is reached on.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("can't load openapi document, err: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document, err: %w", err)
	}
	doc.Servers = nil
	return doc, nil
}
