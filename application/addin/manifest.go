package addin

import (
	"strconv"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// Manifest describes the name tables of the component.
func (a *AddIn) Manifest() *entities.Manifest {
	m := &entities.Manifest{
		Name:       a.def.Name,
		Extension:  a.def.Name,
		Properties: make([]entities.PropertyManifest, 0, len(a.def.Props)),
		Methods:    make([]entities.MethodManifest, 0, len(a.def.Methods)),
	}

	for _, p := range a.def.Props {
		m.Properties = append(m.Properties, entities.PropertyManifest{
			Name:     p.Name,
			Alias:    p.Alias,
			Kind:     p.codec.name,
			Readable: p.Readable,
			Writable: p.Writable,
		})
	}

	for _, md := range a.def.Methods {
		mm := entities.MethodManifest{
			Name:      md.Name,
			Alias:     md.Alias,
			HasReturn: md.ret != nil,
		}
		for _, p := range md.params {
			pm := entities.ParamManifest{
				Kind:     p.codec.name,
				Out:      p.out,
				Optional: p.optional,
			}
			if p.def != nil && !p.def.IsEmpty() {
				pm.Default = literal(*p.def)
			}
			mm.Params = append(mm.Params, pm)
		}
		m.Methods = append(m.Methods, mm)
	}
	return m
}

// literal renders a default value the way it would be written in a tag.
func literal(v entities.Value) string {
	switch v.Kind() {
	case entities.KindString:
		s, _ := v.Str()
		return s
	case entities.KindBlob:
		b, _ := v.Blob()
		return string(b)
	case entities.KindDate:
		d, _ := v.Date()
		return d.Time(nil).Format(dateLayouts[0])
	case entities.KindBool:
		b, _ := v.Bool()
		return strconv.FormatBool(b)
	case entities.KindInt32:
		i, _ := v.Int32()
		return strconv.FormatInt(int64(i), 10)
	case entities.KindFloat64:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return ""
	}
}
