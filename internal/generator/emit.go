package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
)

const sourceTemplate = `
{{- define "enum"}}
{{comment .Name .Doc (print .Name " is an open enum.")}}
type {{.Name}} string

const (
{{- range .Values}}
	{{- if .Doc}}
	// {{.Const}} - {{.Doc}}
	{{- end}}
	{{.Const}} {{$.Name}} = {{printf "%q" .Value}}
{{- end}}
)

var {{.Table}} = openenum.New({{printf "%q" .WireName}},
{{- range .Values}}
	{{- if .Derived}}
	openenum.V({{.Const}}),
	{{- else}}
	openenum.Variant[{{$.Name}}]{Name: {{printf "%q" .Name}}, Value: {{.Const}}},
	{{- end}}
{{- end}}
){{if .DefaultConst}}.WithDefault({{.DefaultConst}}){{end}}

// Possible{{.Name}}Values returns the possible values for the {{.Name}} const type.
func Possible{{.Name}}Values() []{{.Name}} {
	return {{.Table}}.Values()
}

// IsKnown reports whether {{.Receiver}} is a documented {{.Name}}.
func ({{.Receiver}} {{.Name}}) IsKnown() bool { return {{.Table}}.IsKnown({{.Receiver}}) }

// MarshalJSON implements json.Marshaler.
func ({{.Receiver}} {{.Name}}) MarshalJSON() ([]byte, error) {
	return {{.Table}}.MarshalJSON({{.Receiver}})
}

// UnmarshalJSON implements json.Unmarshaler.
func ({{.Receiver}} *{{.Name}}) UnmarshalJSON(data []byte) error {
	return {{.Table}}.UnmarshalJSON(data, {{.Receiver}})
}
{{end}}

{{- define "union"}}
{{comment (print .Name "Classification") .Doc (print .Name "Classification is implemented by every " .Name " shape.")}}
type {{.Name}}Classification interface {
	unions.Discriminator
	is{{.Name}}()
}

var {{.Registry}} = unions.NewRegistry[{{.Name}}Classification]({{printf "%q" .Name}}, {{printf "%q" .Discriminator}}).Register(
{{- range .Shapes}}
	func() {{$.Name}}Classification { return &{{.Type}}{} },
{{- end}}
)

type {{.Provider}} struct{}

func ({{.Provider}}) Registry() *unions.Registry[{{.Name}}Classification] {
	return {{.Registry}}
}

// {{.Name}} holds one {{.Name}} shape, selected by the {{printf "%q" .Discriminator}} field.
type {{.Name}} = unions.Tagged[{{.Name}}Classification, {{.Provider}}]
{{range .Shapes}}
func (*{{.Type}}) DiscriminatorValue() string { return {{printf "%q" .Value}} }
func (*{{.Type}}) is{{$.Name}}() {}
{{end}}
{{- end}}

{{- /* file */ -}}
// Code generated by azwire generate. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/gork-labs/azwire/pkg/openenum"
	"github.com/gork-labs/azwire/pkg/unions"
)
{{range .Enums}}{{template "enum" .}}{{end}}
{{- range .Unions}}{{template "union" .}}{{end}}
// Enums returns the tables of every enum in the package.
func Enums() []openenum.Descriptor {
	return []openenum.Descriptor{
{{- range .Enums}}
		{{.Table}},
{{- end}}
	}
}

// Unions returns the registries of every discriminated union in the package.
func Unions() []unions.Descriptor {
	return []unions.Descriptor{
{{- range .Unions}}
		{{.Registry}},
{{- end}}
	}
}
`

var sourceTmpl = template.Must(template.New("source").Funcs(template.FuncMap{
	"comment": docComment,
}).Parse(sourceTemplate))

type enumData struct {
	EnumDefinition
	Table        string
	Receiver     string
	DefaultConst string
	Values       []valueData
}

type valueData struct {
	ValueDefinition
	Const   string
	Derived bool
}

type unionData struct {
	UnionDefinition
	Registry string
	Provider string
}

type fileData struct {
	Package string
	Enums   []enumData
	Unions  []unionData
}

// Generate renders the Go source for defs. The result is gofmt'ed.
func Generate(defs *Definitions) ([]byte, error) {
	if err := defs.Check(); err != nil {
		return nil, err
	}

	data := fileData{Package: defs.Package}
	for _, e := range defs.Enums {
		ed := enumData{
			EnumDefinition: e,
			Table:          collectionName(e.Name),
			Receiver:       receiverName(e.Name),
		}
		for _, v := range e.Values {
			c := constName(e.Name, v.Name)
			ed.Values = append(ed.Values, valueData{
				ValueDefinition: v,
				Const:           c,
				Derived:         v.Name == v.Value,
			})
			if v.Value == e.Default {
				ed.DefaultConst = c
			}
		}
		data.Enums = append(data.Enums, ed)
	}
	for _, u := range defs.Unions {
		data.Unions = append(data.Unions, unionData{
			UnionDefinition: u,
			Registry:        collectionName(u.Name),
			Provider:        lowerInitialism(u.Name) + "Union",
		})
	}

	var buf bytes.Buffer
	if err := sourceTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// docComment renders doc as a Go comment on name, wrapped at 100 columns.
// fallback is used when doc is empty.
func docComment(name, doc, fallback string) string {
	if doc == "" {
		return "// " + fallback
	}
	var lines []string
	line := "// " + name + " -"
	for _, word := range strings.Fields(doc) {
		if len(line)+1+len(word) > 100 {
			lines = append(lines, line)
			line = "//"
		}
		line += " " + word
	}
	return strings.Join(append(lines, line), "\n")
}

// collectionName turns a type name into the lower camel plural used for its
// table or registry variable: SAPDatabaseType becomes sapDatabaseTypes.
func collectionName(name string) string {
	base := lowerInitialism(name)
	switch {
	case strings.HasSuffix(base, "ies"), strings.HasSuffix(base, "s") && !hasAnySuffix(base, "ss", "us", "is"):
		return base
	case hasAnySuffix(base, "s", "x", "ch", "sh"):
		return base + "es"
	case strings.HasSuffix(base, "y") && len(base) > 1 && !strings.ContainsRune("aeiou", rune(base[len(base)-2])):
		return base[:len(base)-1] + "ies"
	}
	return base + "s"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// lowerInitialism lowers the leading upper-case run of name, keeping the
// last capital when it starts the next word: JSONWebKey becomes jsonWebKey.
func lowerInitialism(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// receiverName is the lower-cased initial of the last word of name.
func receiverName(name string) string {
	runes := []rune(name)
	for i := len(runes) - 1; i > 0; i-- {
		if !unicode.IsUpper(runes[i]) {
			continue
		}
		if unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
			return string(unicode.ToLower(runes[i]))
		}
	}
	return string(unicode.ToLower(runes[0]))
}
