package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/infrastructure/parser"
)

func TestYamlManifestParser_Parse(t *testing.T) {
	p := parser.NewYamlManifestParser()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name: "list",
			input: `
- name: Counter
  extension: Counter
- name: Calculator
  extension: Calc
`,
			want: []string{"Counter", "Calculator"},
		},
		{
			name: "single document",
			input: `
name: Counter
extension: Counter
methods:
  - name: Add
    params:
      - kind: int32
    has_return: true
`,
			want: []string{"Counter"},
		},
		{
			name:  "json",
			input: `[{"name": "Counter", "extension": "Counter", "properties": [], "methods": []}]`,
			want:  []string{"Counter"},
		},
		{name: "empty", input: "", want: nil},
		{name: "scalar", input: "counter", wantErr: true},
		{name: "malformed", input: "name: [unclosed", wantErr: true},
		{name: "wrong field type", input: "name: Counter\nmethods: 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := p.Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got []string
			for _, m := range ms {
				got = append(got, m.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYamlManifestParser_RenderParse(t *testing.T) {
	p := parser.NewYamlManifestParser()
	want := []*entities.Manifest{{
		Name:      "Counter",
		Extension: "Counter",
		Properties: []entities.PropertyManifest{
			{Name: "Total", Alias: "Итого", Kind: "int32", Readable: true},
		},
		Methods: []entities.MethodManifest{{
			Name:      "Add",
			Params:    []entities.ParamManifest{{Kind: "int32", Optional: true, Default: "1"}},
			HasReturn: true,
		}},
	}}

	data, err := p.Render(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- name: Counter")
	assert.Contains(t, string(data), "alias: Итого")

	got, err := p.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestYamlManifestParser_RenderNil(t *testing.T) {
	data, err := parser.NewYamlManifestParser().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
