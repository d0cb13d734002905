// Package wirelint provides a vet-style analyzer for code built on the azwire
// codecs.
package wirelint

import (
	"go/ast"
	"go/constant"
	"go/types"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports switches over open enums without a default case,
// discriminator values shared by two shapes of one union, and malformed list
// path templates.
var Analyzer = &analysis.Analyzer{
	Name: "wirelint",
	Doc:  "checks open enum switches, union discriminator values and list path templates",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.SwitchStmt:
				checkEnumSwitch(pass, node)
			case *ast.CallExpr:
				checkPathTemplate(pass, node)
			}
			return true
		})
	}
	checkDiscriminatorValues(pass)
	return nil, nil
}

// ---------------- open enum switches ----------------

func checkEnumSwitch(pass *analysis.Pass, sw *ast.SwitchStmt) {
	if sw.Tag == nil {
		return
	}
	t := pass.TypesInfo.TypeOf(sw.Tag)
	if t == nil || !isOpenEnum(t) {
		return
	}
	for _, stmt := range sw.Body.List {
		if cc, ok := stmt.(*ast.CaseClause); ok && cc.List == nil {
			return
		}
	}
	pass.Reportf(sw.Pos(), "switch on open enum %s has no default case", types.TypeString(t, types.RelativeTo(pass.Pkg)))
}

// isOpenEnum reports whether t is a named string type with an
// IsKnown() bool method.
func isOpenEnum(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsString == 0 {
		return false
	}
	sel := types.NewMethodSet(named).Lookup(named.Obj().Pkg(), "IsKnown")
	if sel == nil {
		return false
	}
	sig, ok := sel.Obj().Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	res, ok := sig.Results().At(0).Type().(*types.Basic)
	return ok && res.Kind() == types.Bool
}

// ---------------- union discriminator values ----------------

type discriminatorDecl struct {
	typeName string
	value    string
	expr     ast.Expr
}

func checkDiscriminatorValues(pass *analysis.Pass) {
	markers := map[string][]string{}
	var decls []discriminatorDecl

	for _, file := range pass.Files {
		for _, d := range file.Decls {
			fn, ok := d.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
				continue
			}
			recv := receiverTypeName(fn.Recv.List[0].Type)
			if recv == "" {
				continue
			}
			switch {
			case isUnionMarker(fn):
				markers[recv] = append(markers[recv], fn.Name.Name)
			case fn.Name.Name == "DiscriminatorValue":
				if expr, value, ok := returnedString(pass, fn); ok {
					decls = append(decls, discriminatorDecl{typeName: recv, value: value, expr: expr})
				}
			}
		}
	}

	seen := map[string]string{}
	for _, d := range decls {
		if d.value == "" {
			pass.Reportf(d.expr.Pos(), "empty discriminator value on %s", d.typeName)
			continue
		}
		for _, marker := range markers[d.typeName] {
			key := marker + "\x00" + d.value
			if prev, dup := seen[key]; dup {
				pass.Reportf(d.expr.Pos(), "duplicate discriminator value %q for %s also used by %s", d.value, marker, prev)
				continue
			}
			seen[key] = d.typeName
		}
	}
}

func receiverTypeName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// isUnionMarker matches the unexported isX() methods that tie a shape to its
// union interface.
func isUnionMarker(fn *ast.FuncDecl) bool {
	name := fn.Name.Name
	if len(name) < 3 || !strings.HasPrefix(name, "is") || !ast.IsExported(name[2:]) {
		return false
	}
	return fn.Type.Params.NumFields() == 0 && fn.Type.Results.NumFields() == 0
}

// returnedString resolves the constant string a single-return method yields,
// whether written as a literal, a named constant or a conversion of one.
func returnedString(pass *analysis.Pass, fn *ast.FuncDecl) (ast.Expr, string, bool) {
	if fn.Body == nil || len(fn.Body.List) != 1 {
		return nil, "", false
	}
	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, "", false
	}
	expr := ret.Results[0]
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return nil, "", false
	}
	return expr, constant.StringVal(tv.Value), true
}

// ---------------- list path templates ----------------

var placeholderRegexp = regexp.MustCompile(`\{([^{}]*)\}`)

// pathArgs maps the functions that take a path template to the template's
// argument index.
var pathArgs = map[string]int{
	"NewListPager": 1,
	"ExpandPath":   0,
}

func checkPathTemplate(pass *analysis.Pass, call *ast.CallExpr) {
	idx, ok := pathArgs[calleeName(call)]
	if !ok || len(call.Args) <= idx {
		return
	}
	arg := call.Args[idx]
	tv, ok := pass.TypesInfo.Types[arg]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return
	}
	if msg := pathTemplateProblem(constant.StringVal(tv.Value)); msg != "" {
		pass.Reportf(arg.Pos(), "path template %s", msg)
	}
}

func calleeName(call *ast.CallExpr) string {
	fun := call.Fun
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	}
	return ""
}

// pathTemplateProblem describes what is wrong with template, or returns "".
func pathTemplateProblem(template string) string {
	if !strings.HasPrefix(template, "/") {
		return "must start with /"
	}
	seen := map[string]bool{}
	for _, m := range placeholderRegexp.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if name == "" {
			return "has an empty placeholder"
		}
		if seen[name] {
			return "repeats placeholder {" + name + "}"
		}
		seen[name] = true
	}
	rest := placeholderRegexp.ReplaceAllString(template, "")
	if strings.ContainsAny(rest, "{}") {
		return "has an unbalanced brace"
	}
	return ""
}
