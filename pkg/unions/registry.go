// Package unions decodes and encodes discriminated unions: JSON objects whose
// concrete shape is selected by the value of a single tag field.
package unions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

var jsonNull = []byte("null")

// Registry is the static dispatch table of one union type. It maps each
// discriminator value to a constructor for the matching shape.
//
// A Registry is populated once, at package initialization, and is read-only
// afterwards; Decode and Encode are safe for concurrent use.
type Registry[S Discriminator] struct {
	name   string
	field  string
	shapes map[string]func() S
	values []string
}

// NewRegistry creates an empty registry for the union called name whose
// discriminator is carried in the JSON field field.
func NewRegistry[S Discriminator](name, field string) *Registry[S] {
	return &Registry[S]{
		name:   name,
		field:  field,
		shapes: make(map[string]func() S),
	}
}

// Register adds shapes to the registry. The discriminator value of each shape
// is read from a freshly constructed instance. Registering an empty or
// duplicate discriminator panics.
func (r *Registry[S]) Register(ctors ...func() S) *Registry[S] {
	for _, ctor := range ctors {
		shape := ctor()
		tag := shape.DiscriminatorValue()
		if tag == "" {
			panic(fmt.Sprintf("unions: %s: shape %T has an empty discriminator", r.name, shape))
		}
		if _, dup := r.shapes[tag]; dup {
			panic(fmt.Sprintf("unions: %s: discriminator %q registered twice", r.name, tag))
		}
		r.shapes[tag] = ctor
		r.values = append(r.values, tag)
	}
	return r
}

// Name returns the union name used in error messages.
func (r *Registry[S]) Name() string {
	return r.name
}

// DiscriminatorFieldName implements DiscriminatorField.
func (r *Registry[S]) DiscriminatorFieldName() string {
	return r.field
}

// Values returns the registered discriminator values in registration order.
func (r *Registry[S]) Values() []string {
	return append([]string(nil), r.values...)
}

// New returns a zero shape for the discriminator value tag.
func (r *Registry[S]) New(tag string) (S, bool) {
	ctor, ok := r.shapes[tag]
	if !ok {
		var zero S
		return zero, false
	}
	return ctor(), true
}

// NewShape is New without the static shape type.
func (r *Registry[S]) NewShape(tag string) (any, bool) {
	return r.New(tag)
}

// Decode reads the discriminator from the JSON object in data and decodes the
// object into the matching shape. The shape's required fields are validated
// after decoding. A JSON null decodes to the zero value of S.
func (r *Registry[S]) Decode(data []byte) (S, error) {
	var zero S

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return zero, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return zero, r.decodeError("", err)
	}

	raw, ok := fields[r.field]
	if !ok || bytes.Equal(raw, jsonNull) {
		return zero, r.decodeError("", ErrMissingDiscriminator)
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return zero, r.decodeError("", fmt.Errorf("discriminator %q: %w", r.field, err))
	}

	shape, ok := r.New(tag)
	if !ok {
		return zero, r.decodeError(tag, ErrUnknownDiscriminator)
	}
	if err := json.Unmarshal(data, shape); err != nil {
		return zero, r.decodeError(tag, err)
	}
	if err := validateShape(shape); err != nil {
		return zero, r.decodeError(tag, err)
	}

	return shape, nil
}

// Encode marshals the shape's own fields and injects the discriminator as the
// first member of the resulting object. A nil shape encodes as null.
func (r *Registry[S]) Encode(v S) ([]byte, error) {
	if isNil(v) {
		return jsonNull, nil
	}

	tag := v.DiscriminatorValue()
	if _, ok := r.shapes[tag]; !ok {
		return nil, fmt.Errorf("encode %s: shape %T: %w %q=%q", r.name, v, ErrUnknownDiscriminator, r.field, tag)
	}

	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", r.name, err)
	}

	var own map[string]json.RawMessage
	if err := json.Unmarshal(body, &own); err != nil || own == nil {
		return nil, fmt.Errorf("encode %s: shape %T does not encode to a JSON object", r.name, v)
	}
	if _, dup := own[r.field]; dup {
		return nil, fmt.Errorf("encode %s: shape %T already carries field %q", r.name, v, r.field)
	}

	key, _ := json.Marshal(r.field)
	value, _ := json.Marshal(tag)

	var buf bytes.Buffer
	buf.Grow(len(body) + len(key) + len(value) + 2)
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(value)
	if len(own) > 0 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func (r *Registry[S]) decodeError(tag string, err error) error {
	return &DecodeError{Union: r.name, Field: r.field, Value: tag, Err: err}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
