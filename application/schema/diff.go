package schema

import (
	"fmt"
	"reflect"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// DiffManifests compares a committed manifest set with the current one and
// describes every difference a host would observe. An empty result means the
// name tables are identical.
func DiffManifests(committed, current []*entities.Manifest) []string {
	var out []string
	byName := make(map[string]*entities.Manifest, len(current))
	for _, m := range current {
		byName[m.Name] = m
	}

	seen := make(map[string]bool, len(committed))
	for _, want := range committed {
		seen[want.Name] = true
		got, ok := byName[want.Name]
		if !ok {
			out = append(out, fmt.Sprintf("%s: class removed", want.Name))
			continue
		}
		out = append(out, diffManifest(want, got)...)
	}
	for _, m := range current {
		if !seen[m.Name] {
			out = append(out, fmt.Sprintf("%s: class added", m.Name))
		}
	}
	return out
}

func diffManifest(want, got *entities.Manifest) []string {
	var out []string
	if want.Extension != got.Extension {
		out = append(out, fmt.Sprintf("%s: extension %q, now %q", want.Name, want.Extension, got.Extension))
	}
	out = append(out, diffSlots(want.Name, "property", want.Properties, got.Properties, func(p entities.PropertyManifest) string { return p.Name })...)
	out = append(out, diffSlots(want.Name, "method", want.Methods, got.Methods, func(m entities.MethodManifest) string { return m.Name })...)
	return out
}

// diffSlots compares slot tables by index, since the host addresses slots by number.
func diffSlots[T any](class, table string, want, got []T, name func(T) string) []string {
	var out []string
	for i := 0; i < max(len(want), len(got)); i++ {
		switch {
		case i >= len(got):
			out = append(out, fmt.Sprintf("%s: %s %d (%s) removed", class, table, i, name(want[i])))
		case i >= len(want):
			out = append(out, fmt.Sprintf("%s: %s %d (%s) added", class, table, i, name(got[i])))
		case !reflect.DeepEqual(want[i], got[i]):
			out = append(out, fmt.Sprintf("%s: %s %d (%s) changed", class, table, i, name(want[i])))
		}
	}
	return out
}
