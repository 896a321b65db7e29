package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/logger"
)

// propsIdentBlock builds `export default (props) => { return props.name; }`,
// a minimal single-param reactive component.
func propsIdentBlock() *js_ast.Module {
	ret := js_ast.Stmt{Data: &js_ast.SReturn{ValueOrNil: &js_ast.Expr{Data: &js_ast.EMember{
		Obj:  js_ast.Ident("props"),
		Prop: js_ast.MemberProp{Ident: "name"},
	}}}}
	arrow := &js_ast.EArrow{
		Params: []js_ast.Binding{{Data: &js_ast.BIdentifier{Name: "props"}}},
		Block:  &js_ast.SBlock{Stmts: []js_ast.Stmt{ret}},
	}
	return &js_ast.Module{
		Stmts: []js_ast.Stmt{
			{Data: &js_ast.SExportDefaultExpr{Value: js_ast.Expr{Data: arrow}}},
		},
	}
}

func TestTransformPrependsRuntimeImport(t *testing.T) {
	module := propsIdentBlock()
	log := logger.NewDeferLog()
	Transform(module, "export default (props) => { return props.name; }", log, &logger.Source{Contents: "x"})

	require.Len(t, module.Stmts, 2)
	imp, ok := module.Stmts[0].Data.(*js_ast.SImport)
	require.True(t, ok, "first statement should be the prepended runtime import")
	require.NotNil(t, imp.NamespaceName)
	assert.NotEmpty(t, *imp.NamespaceName)
	assert.False(t, log.HasErrors())
}

func TestTransformRewritesDefaultExportArrowIntoViewCall(t *testing.T) {
	module := propsIdentBlock()
	log := logger.NewDeferLog()
	Transform(module, "export default (props) => { return props.name; }", log, &logger.Source{Contents: "x"})

	exportStmt := module.Stmts[1].Data.(*js_ast.SExportDefaultExpr)
	outer, ok := exportStmt.Value.Data.(*js_ast.EArrow)
	require.True(t, ok, "the exported value should still be an arrow taking the original params")
	require.Len(t, outer.Params, 1)
	require.NotNil(t, outer.Expr, "outer arrow now has a bare-expression body calling view()")

	call, ok := outer.Expr.Data.(*js_ast.ECall)
	require.True(t, ok)
	member, ok := call.Callee.Expr.Data.(*js_ast.EMember)
	require.True(t, ok)
	assert.Equal(t, "view", member.Prop.Ident)
	require.Len(t, call.Args, 2)
}

func TestTransformSkipsNonArrowDefaultExport(t *testing.T) {
	module := &js_ast.Module{
		Stmts: []js_ast.Stmt{
			{Data: &js_ast.SExportDefaultExpr{Value: js_ast.String("not a component")}},
		},
	}
	log := logger.NewDeferLog()
	Transform(module, "export default \"not a component\";", log, &logger.Source{Contents: "x"})

	exportStmt := module.Stmts[1].Data.(*js_ast.SExportDefaultExpr)
	str, ok := exportStmt.Value.Data.(*js_ast.EString)
	require.True(t, ok, "non-arrow default exports are left untouched")
	assert.Equal(t, "not a component", str.Value)
}
