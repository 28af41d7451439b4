package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

func manifest(name string) *entities.Manifest {
	return &entities.Manifest{
		Name:      name,
		Extension: name,
		Properties: []entities.PropertyManifest{
			{Name: "Total", Kind: "int32", Readable: true},
		},
		Methods: []entities.MethodManifest{
			{Name: "Reset"},
			{Name: "Add", Params: []entities.ParamManifest{{Kind: "int32"}}, HasReturn: true},
		},
	}
}

func TestDiffManifests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *entities.Manifest)
		want   []string
	}{
		{name: "identical", mutate: func(*entities.Manifest) {}},
		{
			name:   "extension renamed",
			mutate: func(m *entities.Manifest) { m.Extension = "Other" },
			want:   []string{`Counter: extension "Counter", now "Other"`},
		},
		{
			name:   "property made writable",
			mutate: func(m *entities.Manifest) { m.Properties[0].Writable = true },
			want:   []string{"Counter: property 0 (Total) changed"},
		},
		{
			name: "methods reordered",
			mutate: func(m *entities.Manifest) {
				m.Methods[0], m.Methods[1] = m.Methods[1], m.Methods[0]
			},
			want: []string{"Counter: method 0 (Reset) changed", "Counter: method 1 (Add) changed"},
		},
		{
			name:   "method appended",
			mutate: func(m *entities.Manifest) { m.Methods = append(m.Methods, entities.MethodManifest{Name: "Sub"}) },
			want:   []string{"Counter: method 2 (Sub) added"},
		},
		{
			name:   "property removed",
			mutate: func(m *entities.Manifest) { m.Properties = nil },
			want:   []string{"Counter: property 0 (Total) removed"},
		},
		{
			name:   "param default added",
			mutate: func(m *entities.Manifest) { m.Methods[1].Params[0].Default = "1" },
			want:   []string{"Counter: method 1 (Add) changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := manifest("Counter")
			tt.mutate(current)
			assert.Equal(t, tt.want, DiffManifests([]*entities.Manifest{manifest("Counter")}, []*entities.Manifest{current}))
		})
	}
}

func TestDiffManifests_Classes(t *testing.T) {
	got := DiffManifests(
		[]*entities.Manifest{manifest("Counter"), manifest("Old")},
		[]*entities.Manifest{manifest("New"), manifest("Counter")},
	)
	assert.Equal(t, []string{"Old: class removed", "New: class added"}, got)
}
