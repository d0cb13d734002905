// Package openenum implements open-world string enums: a closed, documented
// set of known wire values that still tolerates values added by the service
// after the client was built.
//
// An open enum is a named string type with one constant per known value. Any
// other string of that type is the fallback variant and carries the wire
// value verbatim, so decoding never fails and encoding always reproduces the
// original wire string.
package openenum

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Known is implemented by open enum types to report whether a value belongs
// to the documented set.
type Known interface {
	IsKnown() bool
}

// Descriptor is the type-erased view of a Table, for tooling that lists enums
// of different types side by side.
type Descriptor interface {
	TypeName() string
	GoType() reflect.Type
	Strings() []string
	Symbols() []string
	DefaultString() string
}

// Variant is one known value of an open enum. Name is the symbolic Go name
// (e.g. "N1_0") and Value the wire string (e.g. "1.0").
type Variant[E ~string] struct {
	Name  string
	Value E
}

// V is shorthand for a Variant whose symbolic name equals its wire string.
func V[E ~string](value E) Variant[E] {
	return Variant[E]{Name: string(value), Value: value}
}

// Table is the static list of known values of one open enum type. Tables are
// built at package initialization and never modified afterwards.
type Table[E ~string] struct {
	typeName   string
	variants   []Variant[E]
	byValue    map[E]int
	def        E
	hasDefault bool
}

// New builds the table for typeName. Empty or duplicate wire strings and
// duplicate symbolic names panic.
func New[E ~string](typeName string, variants ...Variant[E]) *Table[E] {
	t := &Table[E]{
		typeName: typeName,
		variants: make([]Variant[E], 0, len(variants)),
		byValue:  make(map[E]int, len(variants)),
	}
	names := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v.Value == "" {
			panic(fmt.Sprintf("openenum: %s: empty wire value", typeName))
		}
		if _, dup := t.byValue[v.Value]; dup {
			panic(fmt.Sprintf("openenum: %s: wire value %q declared twice", typeName, v.Value))
		}
		if v.Name == "" {
			v.Name = string(v.Value)
		}
		if _, dup := names[v.Name]; dup {
			panic(fmt.Sprintf("openenum: %s: name %q declared twice", typeName, v.Name))
		}
		names[v.Name] = struct{}{}
		t.byValue[v.Value] = len(t.variants)
		t.variants = append(t.variants, v)
	}
	return t
}

// WithDefault declares the value used when the field is absent from the wire
// payload. The default must be a known value.
func (t *Table[E]) WithDefault(v E) *Table[E] {
	if !t.IsKnown(v) {
		panic(fmt.Sprintf("openenum: %s: default %q is not a known value", t.typeName, v))
	}
	t.def = v
	t.hasDefault = true
	return t
}

// TypeName returns the enum type name the table was built for.
func (t *Table[E]) TypeName() string {
	return t.typeName
}

// GoType returns the Go type of the enum values.
func (t *Table[E]) GoType() reflect.Type {
	return reflect.TypeOf(*new(E))
}

// Decode maps a wire string to an enum value. Matching is exact and case
// sensitive; a string outside the known set yields the fallback variant
// holding s unchanged.
func (t *Table[E]) Decode(s string) E {
	if i, ok := t.byValue[E(s)]; ok {
		return t.variants[i].Value
	}
	return E(s)
}

// Encode returns the wire string of v. Known values emit their declared wire
// string, the fallback emits the string it was decoded from.
func (t *Table[E]) Encode(v E) string {
	return string(v)
}

// IsKnown reports whether v is one of the declared values.
func (t *Table[E]) IsKnown(v E) bool {
	_, ok := t.byValue[v]
	return ok
}

// Values returns the known values in declaration order.
func (t *Table[E]) Values() []E {
	values := make([]E, len(t.variants))
	for i, v := range t.variants {
		values[i] = v.Value
	}
	return values
}

// Strings returns the known wire strings in declaration order.
func (t *Table[E]) Strings() []string {
	values := make([]string, len(t.variants))
	for i, v := range t.variants {
		values[i] = string(v.Value)
	}
	return values
}

// Symbols returns the symbolic names of the known values, in the order of
// Strings.
func (t *Table[E]) Symbols() []string {
	names := make([]string, len(t.variants))
	for i, v := range t.variants {
		names[i] = v.Name
	}
	return names
}

// Default returns the declared default, if the type has one.
func (t *Table[E]) Default() (E, bool) {
	return t.def, t.hasDefault
}

// DefaultString returns the wire string of the declared default, or "".
func (t *Table[E]) DefaultString() string {
	if !t.hasDefault {
		return ""
	}
	return string(t.def)
}

// OrDefault applies the default-value policy to a decoded field: p is
// returned unchanged when the field was present or the type declares no
// default; otherwise a pointer to a fresh copy of the default is returned.
func (t *Table[E]) OrDefault(p *E) *E {
	if p != nil || !t.hasDefault {
		return p
	}
	v := t.def
	return &v
}

// UnmarshalJSON decodes a JSON string into dst. Enum types delegate their
// json.Unmarshaler to it. A JSON null leaves dst untouched; any other
// non-string value is an error.
func (t *Table[E]) UnmarshalJSON(data []byte, dst *E) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode %s: %w", t.typeName, err)
	}
	*dst = t.Decode(s)
	return nil
}

// MarshalJSON encodes v as a JSON string; enum types delegate their
// json.Marshaler to it.
func (t *Table[E]) MarshalJSON(v E) ([]byte, error) {
	return json.Marshal(t.Encode(v))
}
