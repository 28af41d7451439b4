// Package template renders reference documentation for component manifests.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// templateConfig holds configuration for the GoTemplateEngine.
type templateConfig struct {
	strict bool // Fail on missing keys
}

func defaultTemplateConfig() templateConfig {
	return templateConfig{
		strict: true,
	}
}

// TemplateOption configures a GoTemplateEngine.
type TemplateOption func(*templateConfig)

// WithStrict enables/disables strict mode for missing keys.
// When enabled (default), template rendering fails if a referenced key is missing.
func WithStrict(enabled bool) TemplateOption {
	return func(c *templateConfig) {
		c.strict = enabled
	}
}

// GoTemplateEngine implements TemplateEngine using text/template.
type GoTemplateEngine struct {
	config templateConfig
}

// NewGoTemplateEngine creates a new GoTemplateEngine.
func NewGoTemplateEngine(opts ...TemplateOption) ports.TemplateEngine {
	cfg := defaultTemplateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GoTemplateEngine{config: cfg}
}

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"names":  names,
	"access": access,
	"params": params,
}

// Render executes raw with data as the root value.
func (e *GoTemplateEngine) Render(raw []byte, data any) ([]byte, error) {
	tmpl := template.New("doc").Funcs(Funcs)
	if e.config.strict {
		tmpl = tmpl.Option("missingkey=error")
	}

	tmpl, err := tmpl.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse doc template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute doc template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderReference renders the built-in markdown reference for ms.
func RenderReference(engine ports.TemplateEngine, ms []*entities.Manifest) ([]byte, error) {
	return engine.Render([]byte(ReferenceTemplate), map[string]any{"components": ms})
}

// names joins the English name and the alias of a slot.
func names(name, alias string) string {
	if alias == "" || alias == name {
		return "`" + name + "`"
	}
	return "`" + name + "` / `" + alias + "`"
}

func access(p entities.PropertyManifest) string {
	switch {
	case p.Readable && p.Writable:
		return "read/write"
	case p.Readable:
		return "read"
	case p.Writable:
		return "write"
	default:
		return "none"
	}
}

// params renders a parameter list such as "int32, *string, [float64 = 2]".
func params(ps []entities.ParamManifest) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		s := p.Kind
		if p.Out {
			s = "*" + s
		}
		switch {
		case p.Default != "":
			s = "[" + s + " = " + p.Default + "]"
		case p.Optional:
			s = "[" + s + "]"
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}
