// Package schema provides JSON schema generation for component manifests.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v any) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// ManifestSchema returns the JSON schema describing entities.Manifest.
func ManifestSchema() ([]byte, error) {
	return GenerateSchema(&entities.Manifest{})
}

// RenderManifests marshals manifests as an indented JSON array.
func RenderManifests(ms []*entities.Manifest) ([]byte, error) {
	if ms == nil {
		ms = []*entities.Manifest{}
	}
	data, err := json.MarshalIndent(ms, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifests: %w", err)
	}
	return data, nil
}
