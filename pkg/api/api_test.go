package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewmill/viewmill/internal/astprovider"
	"github.com/viewmill/viewmill/internal/js_ast"
)

// Ported from original_source/transformer/src/lib.rs's test_target.
func TestParseTarget(t *testing.T) {
	es5, err := ParseTarget("es5")
	require.NoError(t, err)
	assert.Equal(t, ES5, es5)

	es2020, err := ParseTarget("ES2020")
	require.NoError(t, err)
	assert.Equal(t, ES2020, es2020)

	esnext, err := ParseTarget("EsNext")
	require.NoError(t, err)
	assert.Equal(t, ESNext, esnext)

	_, err = ParseTarget("lorem ipsum dolor")
	assert.Error(t, err)

	es6, err := ParseTarget("es6")
	require.NoError(t, err)
	assert.Equal(t, ES2015, es6)

	es7, err := ParseTarget("es7")
	require.NoError(t, err)
	assert.Equal(t, ES2016, es7)
}

func TestSyntaxFromPath(t *testing.T) {
	for _, tc := range []struct {
		path string
		want Syntax
		ok   bool
	}{
		{"input.js", Js, true},
		{"input.jsx", Js, true},
		{"input.jSx", Js, true},
		{"input.ts", Ts, true},
		{"input.tsx", Ts, true},
		{"input", 0, false},
		{"input.md", 0, false},
	} {
		got, ok := SyntaxFromPath(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.path)
		}
	}
}

func TestTransformRequiresParser(t *testing.T) {
	_, err := Transform("export default () => null;", TransformOptions{})
	assert.ErrorIs(t, err, ErrNoParser)
}

type stubParser struct {
	module *js_ast.Module
}

func (p *stubParser) Parse(source string, syntax astprovider.Syntax) (*js_ast.Module, []astprovider.Diagnostic, error) {
	return p.module, nil, nil
}

func TestTransformPrependsHeaderAndRewritesComponent(t *testing.T) {
	ret := js_ast.Stmt{Data: &js_ast.SReturn{ValueOrNil: &js_ast.Expr{Data: &js_ast.EMember{
		Obj:  js_ast.Ident("props"),
		Prop: js_ast.MemberProp{Ident: "label"},
	}}}}
	arrow := &js_ast.EArrow{
		Params: []js_ast.Binding{{Data: &js_ast.BIdentifier{Name: "props"}}},
		Block:  &js_ast.SBlock{Stmts: []js_ast.Stmt{ret}},
	}
	module := &js_ast.Module{Stmts: []js_ast.Stmt{
		{Data: &js_ast.SExportDefaultExpr{Value: js_ast.Expr{Data: arrow}}},
	}}

	result, err := Transform("export default (props) => { return props.label; }", TransformOptions{
		Parser:     &stubParser{module: module},
		Sourcefile: "widget.jsx",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "js", result.Ext)
	assert.Contains(t, result.JS, "DO NOT EDIT")
	assert.Contains(t, result.JS, "viewmill-runtime")
}
