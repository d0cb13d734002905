package wirelint

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, Analyzer, "a")
}

func TestPathTemplateProblem(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"/subscriptions/{subscriptionId}/providers/Microsoft.Workloads/sapVirtualInstances", ""},
		{"/keys", ""},
		{"/a/{x}/b/{y}", ""},
		{"keys", "must start with /"},
		{"/a/{}", "has an empty placeholder"},
		{"/a/{x}/{x}", "repeats placeholder {x}"},
		{"/a/{x", "has an unbalanced brace"},
		{"/a/x}", "has an unbalanced brace"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, pathTemplateProblem(tt.template))
		})
	}
}

func TestIsUnionMarker(t *testing.T) {
	src := `package p
func (*T) isOutputDataSource() {}
func (*T) isknown() {}
func (*T) is() {}
func (*T) isShape(x int) {}
func (*T) isShapeOK() bool { return true }
`
	f, err := parser.ParseFile(token.NewFileSet(), "p.go", src, 0)
	require.NoError(t, err)

	var got []bool
	for _, d := range f.Decls {
		got = append(got, isUnionMarker(d.(*ast.FuncDecl)))
	}
	assert.Equal(t, []bool{true, false, false, false, false}, got)
}
