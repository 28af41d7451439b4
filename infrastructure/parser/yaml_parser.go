// Package parser reads and writes component manifests as YAML. JSON
// manifests are valid YAML and parse the same way.
package parser

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// YamlManifestParser implements ports.ManifestCodec for YAML.
type YamlManifestParser struct{}

// NewYamlManifestParser creates a new YamlManifestParser.
func NewYamlManifestParser() ports.ManifestCodec {
	return &YamlManifestParser{}
}

// Parse unmarshals a manifest list, or a single manifest document.
func (p *YamlManifestParser) Parse(data []byte) ([]*entities.Manifest, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var ms []*entities.Manifest
		if err := root.Decode(&ms); err != nil {
			return nil, fmt.Errorf("failed to decode manifests: %w", err)
		}
		return ms, nil
	case yaml.MappingNode:
		var m entities.Manifest
		if err := root.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode manifest: %w", err)
		}
		return []*entities.Manifest{&m}, nil
	default:
		return nil, fmt.Errorf("manifest must be a mapping or a list, line %d", root.Line)
	}
}

// Render marshals manifests as a YAML list with two-space indentation.
func (p *YamlManifestParser) Render(ms []*entities.Manifest) ([]byte, error) {
	if ms == nil {
		ms = []*entities.Manifest{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ms); err != nil {
		return nil, fmt.Errorf("failed to render manifests: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
