package addin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

func TestManifest(t *testing.T) {
	a, _ := newCounter(t)
	m := a.Manifest()

	assert.Equal(t, "Counter", m.Name)
	assert.Equal(t, "Counter", m.Extension)
	require.Len(t, m.Properties, 6)
	assert.Equal(t, entities.PropertyManifest{Name: "Title", Alias: "Заголовок", Kind: "string", Readable: true}, m.Properties[1])
	assert.Equal(t, entities.PropertyManifest{Name: "Secret", Kind: "blob", Writable: true}, m.Properties[2])
	assert.Equal(t, "any", m.Properties[5].Kind)

	require.Len(t, m.Methods, 7)
	add := m.Methods[0]
	assert.Equal(t, "Прибавить", add.Alias)
	assert.True(t, add.HasReturn)
	assert.Equal(t, []entities.ParamManifest{{Kind: "int32", Default: "1"}}, add.Params)

	assert.False(t, m.Methods[1].HasReturn)
	assert.Empty(t, m.Methods[1].Params)

	assert.Equal(t, []entities.ParamManifest{{Kind: "string", Out: true}, {Kind: "string", Out: true}}, m.Methods[2].Params)
	assert.Equal(t, entities.ParamManifest{Kind: "int32", Optional: true, Default: "-1"}, m.Methods[3].Params[1])
	assert.Equal(t, entities.ParamManifest{Kind: "any", Optional: true}, m.Methods[5].Params[0], "empty sentinel has no literal")
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		value entities.Value
		want  string
	}{
		{value: entities.Empty(), want: ""},
		{value: entities.BoolValue(false), want: "false"},
		{value: entities.Int32Value(-3), want: "-3"},
		{value: entities.Float64Value(0.25), want: "0.25"},
		{value: entities.StringValue("x y"), want: "x y"},
		{value: entities.BlobValue([]byte("raw")), want: "raw"},
		{value: entities.DateValue(entities.Date{Year: 2020, Month: 1, Day: 2, Hour: 3, Minute: 4, Second: 5}), want: "2020-01-02T03:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.value.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, literal(tt.value))
		})
	}
}
