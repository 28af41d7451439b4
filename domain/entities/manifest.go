package entities

// Manifest describes the name tables a component exposes to the host.
// Property and method order is significant: the host addresses both by index.
type Manifest struct {
	Name       string             `json:"name" yaml:"name" jsonschema:"description=Class name registered with the host"`
	Extension  string             `json:"extension" yaml:"extension" jsonschema:"description=Name returned by RegisterExtensionAs"`
	Properties []PropertyManifest `json:"properties" yaml:"properties,omitempty"`
	Methods    []MethodManifest   `json:"methods" yaml:"methods,omitempty"`
}

// PropertyManifest describes one property slot.
type PropertyManifest struct {
	Name     string `json:"name" yaml:"name"`
	Alias    string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Readable bool   `json:"readable" yaml:"readable"`
	Writable bool   `json:"writable" yaml:"writable"`
}

// MethodManifest describes one method slot.
type MethodManifest struct {
	Name      string          `json:"name" yaml:"name"`
	Alias     string          `json:"alias,omitempty" yaml:"alias,omitempty"`
	Params    []ParamManifest `json:"params,omitempty" yaml:"params,omitempty"`
	HasReturn bool            `json:"has_return" yaml:"has_return"`
}

// ParamManifest describes one method parameter.
type ParamManifest struct {
	Kind     string `json:"kind" yaml:"kind"`
	Out      bool   `json:"out,omitempty" yaml:"out,omitempty"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty"`
}
