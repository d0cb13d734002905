package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Definitions describes the enums and unions of one model package.
type Definitions struct {
	Package string            `yaml:"package" validate:"required"`
	Enums   []EnumDefinition  `yaml:"enums" validate:"dive"`
	Unions  []UnionDefinition `yaml:"unions" validate:"dive"`
}

// EnumDefinition is one open enum. WireName is the schema name reported by
// the table and defaults to Name.
type EnumDefinition struct {
	Name     string            `yaml:"name" validate:"required"`
	WireName string            `yaml:"wireName"`
	Doc      string            `yaml:"doc"`
	Default  string            `yaml:"default"`
	Values   []ValueDefinition `yaml:"values" validate:"required,min=1,dive"`
}

// ValueDefinition is one known enum value. Name is derived from Value when
// empty.
type ValueDefinition struct {
	Value string `yaml:"value" validate:"required"`
	Name  string `yaml:"name"`
	Doc   string `yaml:"doc"`
}

// UnionDefinition is one discriminated union. The shape types are declared
// by hand next to the generated file.
type UnionDefinition struct {
	Name          string            `yaml:"name" validate:"required"`
	Doc           string            `yaml:"doc"`
	Discriminator string            `yaml:"discriminator" validate:"required"`
	Shapes        []ShapeDefinition `yaml:"shapes" validate:"required,min=1,dive"`
}

// ShapeDefinition binds a discriminator value to a shape type.
type ShapeDefinition struct {
	Value string `yaml:"value" validate:"required"`
	Type  string `yaml:"type" validate:"required"`
}

// LoadDefinitions reads a definitions file.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// ParseDefinitions decodes YAML definitions, rejecting unknown keys, and
// checks them.
func ParseDefinitions(data []byte) (*Definitions, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var defs Definitions
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}
	if err := defs.Check(); err != nil {
		return nil, err
	}
	return &defs, nil
}

var definitionsValidator = validator.New(validator.WithRequiredStructEnabled())

// Check fills in derived symbolic names and reports every definition error:
// missing fields, duplicate names or values, defaults outside the known set
// and names that are not Go identifiers.
func (d *Definitions) Check() error {
	if err := definitionsValidator.Struct(d); err != nil {
		return fmt.Errorf("invalid definitions: %w", err)
	}

	var errs []error
	if !token.IsIdentifier(d.Package) {
		errs = append(errs, fmt.Errorf("package %q is not a valid identifier", d.Package))
	}

	types := map[string]string{}
	declare := func(kind, name string) {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			errs = append(errs, fmt.Errorf("%s %q is not an exported identifier", kind, name))
			return
		}
		if prev, dup := types[name]; dup {
			errs = append(errs, fmt.Errorf("%s %q already declared as %s", kind, name, prev))
			return
		}
		types[name] = kind
	}

	consts := map[string]string{}
	for i := range d.Enums {
		e := &d.Enums[i]
		declare("enum", e.Name)
		if e.WireName == "" {
			e.WireName = e.Name
		}

		values := map[string]bool{}
		names := map[string]bool{}
		for j := range e.Values {
			v := &e.Values[j]
			if v.Name == "" {
				v.Name = SymbolicName(v.Value)
			}
			c := constName(e.Name, v.Name)
			switch {
			case v.Name == "" || !token.IsIdentifier(c):
				errs = append(errs, fmt.Errorf("enum %s: value %q: name %q is not a valid identifier", e.Name, v.Value, v.Name))
			case names[v.Name]:
				errs = append(errs, fmt.Errorf("enum %s: name %q declared twice", e.Name, v.Name))
			case consts[c] != "":
				errs = append(errs, fmt.Errorf("enum %s: value %q: constant %s collides with %s", e.Name, v.Value, c, consts[c]))
			default:
				consts[c] = fmt.Sprintf("enum %s value %q", e.Name, v.Value)
			}
			if values[v.Value] {
				errs = append(errs, fmt.Errorf("enum %s: value %q declared twice", e.Name, v.Value))
			}
			values[v.Value] = true
			names[v.Name] = true
		}
		if e.Default != "" && !values[e.Default] {
			errs = append(errs, fmt.Errorf("enum %s: default %q is not a known value", e.Name, e.Default))
		}
	}

	for _, u := range d.Unions {
		declare("union", u.Name)
		values := map[string]bool{}
		shapes := map[string]bool{}
		for _, s := range u.Shapes {
			if values[s.Value] {
				errs = append(errs, fmt.Errorf("union %s: discriminator %q declared twice", u.Name, s.Value))
			}
			if shapes[s.Type] {
				errs = append(errs, fmt.Errorf("union %s: shape %s declared twice", u.Name, s.Type))
			}
			if !token.IsIdentifier(s.Type) {
				errs = append(errs, fmt.Errorf("union %s: shape %q is not a valid identifier", u.Name, s.Type))
			}
			values[s.Value] = true
			shapes[s.Type] = true
		}
	}

	for c, owner := range consts {
		if kind, dup := types[c]; dup {
			errs = append(errs, fmt.Errorf("%s: constant %s collides with %s %s", owner, c, kind, c))
		}
	}

	return errors.Join(errs...)
}

// constName is the Go constant emitted for the value named name of enum.
func constName(enum, name string) string {
	return enum + strings.ReplaceAll(name, "_", "")
}

// SymbolicName derives the Go name of an enum value from its wire string.
// Separators are dropped and each word is capitalised; a dot between digits
// becomes an underscore and a leading digit gets an "N" prefix, so "1.0"
// becomes "N1_0", "EC-HSM" becomes "ECHSM" and "oct" becomes "Oct".
func SymbolicName(value string) string {
	var b strings.Builder
	runes := []rune(value)
	upper := true
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		case r == '.' && i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]):
			b.WriteByte('_')
		case r == '_':
			b.WriteByte('_')
			upper = true
		default:
			upper = true
		}
	}
	name := b.String()
	if name != "" && unicode.IsDigit(rune(name[0])) {
		name = "N" + name
	}
	return name
}
