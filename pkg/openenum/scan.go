package openenum

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Finding is a field holding a value outside its enum's known set.
type Finding struct {
	Path  string
	Type  string
	Value string
}

// String implements fmt.Stringer.
func (f Finding) String() string {
	return fmt.Sprintf("%s: unknown %s value %q", f.Path, f.Type, f.Value)
}

var knownType = reflect.TypeOf((*Known)(nil)).Elem()

// tagged matches union field wrappers, which are walked without adding a
// path segment of their own.
type tagged interface {
	Discriminator() string
}

var taggedType = reflect.TypeOf((*tagged)(nil)).Elem()

// Scan walks a decoded model and reports every open enum value that is not
// part of its type's known set. Paths use JSON field names rooted at "$".
func Scan(v any) []Finding {
	var findings []Finding
	scan(reflect.ValueOf(v), "$", &findings)
	return findings
}

func scan(rv reflect.Value, path string, out *[]Finding) {
	if !rv.IsValid() {
		return
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return
		}
		scan(rv.Elem(), path, out)
		return
	}

	if rv.Kind() == reflect.String && rv.Type().Implements(knownType) {
		if k, ok := rv.Interface().(Known); ok && !k.IsKnown() {
			*out = append(*out, Finding{Path: path, Type: rv.Type().Name(), Value: rv.String()})
		}
		return
	}

	switch rv.Kind() {
	case reflect.Struct:
		scanStruct(rv, path, out)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			scan(rv.Index(i), fmt.Sprintf("%s[%d]", path, i), out)
		}
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		// Keys are reported at their entry's path, ahead of the value.
		for _, k := range keys {
			entry := fmt.Sprintf("%s[%q]", path, fmt.Sprint(k.Interface()))
			scan(k, entry, out)
			scan(rv.MapIndex(k), entry, out)
		}
	}
}

func scanStruct(rv reflect.Value, path string, out *[]Finding) {
	t := rv.Type()
	transparent := t.Implements(taggedType)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if transparent {
			scan(rv.Field(i), path, out)
			continue
		}
		name, ok := jsonName(f)
		switch {
		case !ok:
			continue
		case name == "":
			scan(rv.Field(i), path, out)
		default:
			scan(rv.Field(i), path+"."+name, out)
		}
	}
}

// jsonName returns the JSON member name of f. Embedded structs without a tag
// are flattened and report "". Fields tagged "-" report false.
func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	name := strings.Split(tag, ",")[0]
	switch {
	case name == "-":
		return "", false
	case name != "":
		return name, true
	case f.Anonymous:
		return "", true
	default:
		return f.Name, true
	}
}
