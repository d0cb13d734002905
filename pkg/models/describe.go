package models

import (
	"reflect"
	"sort"

	"github.com/gork-labs/azwire/pkg/openenum"
	"github.com/gork-labs/azwire/pkg/unions"
)

// Description lists the unions and open enums reachable from a model.
type Description struct {
	Name   string      `json:"name" yaml:"name"`
	Doc    string      `json:"doc,omitempty" yaml:"doc,omitempty"`
	Unions []UnionInfo `json:"unions,omitempty" yaml:"unions,omitempty"`
	Enums  []EnumInfo  `json:"enums,omitempty" yaml:"enums,omitempty"`
}

// UnionInfo describes one discriminated union.
type UnionInfo struct {
	Name          string   `json:"name" yaml:"name"`
	Discriminator string   `json:"discriminator" yaml:"discriminator"`
	Values        []string `json:"values" yaml:"values"`
}

// EnumInfo describes one open enum.
type EnumInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Values  []string `json:"values" yaml:"values"`
	Symbols []string `json:"symbols" yaml:"symbols"`
	Default string   `json:"default,omitempty" yaml:"default,omitempty"`
}

type unionField interface {
	Union() unions.Descriptor
}

var unionFieldType = reflect.TypeOf((*unionField)(nil)).Elem()

// Describe walks the named model's type, following every union into each of
// its shapes.
func Describe(name string) (Description, error) {
	m, err := Lookup(name)
	if err != nil {
		return Description{}, err
	}

	w := walker{
		seen:   map[reflect.Type]bool{},
		unions: map[string]unions.Descriptor{},
		enums:  map[reflect.Type]openenum.Descriptor{},
	}
	w.walk(reflect.TypeOf(m.New()))

	desc := Description{Name: m.Name, Doc: m.Doc}
	for _, u := range w.unions {
		desc.Unions = append(desc.Unions, UnionInfo{
			Name:          u.Name(),
			Discriminator: u.DiscriminatorFieldName(),
			Values:        u.Values(),
		})
	}
	for t, e := range w.enums {
		desc.Enums = append(desc.Enums, EnumInfo{
			Name:    t.Name(),
			Values:  e.Strings(),
			Symbols: e.Symbols(),
			Default: e.DefaultString(),
		})
	}
	sort.Slice(desc.Unions, func(i, j int) bool { return desc.Unions[i].Name < desc.Unions[j].Name })
	sort.Slice(desc.Enums, func(i, j int) bool { return desc.Enums[i].Name < desc.Enums[j].Name })
	return desc, nil
}

type walker struct {
	seen   map[reflect.Type]bool
	unions map[string]unions.Descriptor
	enums  map[reflect.Type]openenum.Descriptor
}

func (w *walker) walk(t reflect.Type) {
	for isContainer(t.Kind()) {
		t = t.Elem()
	}
	if w.seen[t] {
		return
	}
	w.seen[t] = true

	if e, ok := enumsByType[t]; ok {
		w.enums[t] = e
		return
	}

	if t.Implements(unionFieldType) {
		u := reflect.Zero(t).Interface().(unionField).Union()
		w.unions[u.Name()] = u
		for _, tag := range u.Values() {
			if shape, ok := u.NewShape(tag); ok {
				w.walk(reflect.TypeOf(shape))
			}
		}
		return
	}

	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			w.walk(f.Type)
		}
	}
}

func isContainer(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}
