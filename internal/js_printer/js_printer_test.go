package js_printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewmill/viewmill/internal/js_ast"
	. "github.com/viewmill/viewmill/internal/js_printer"
)

func TestPrintExprBinaryPrecedence(t *testing.T) {
	// a + b * c should not parenthesize the multiplication.
	expr := js_ast.Expr{Data: &js_ast.EBinary{
		Op:   js_ast.BinOpAdd,
		Left: js_ast.Ident("a"),
		Right: js_ast.Expr{Data: &js_ast.EBinary{
			Op:    js_ast.BinOpMul,
			Left:  js_ast.Ident("b"),
			Right: js_ast.Ident("c"),
		}},
	}}
	assert.Equal(t, "a + b * c", PrintExpr(expr, DefaultOptions()))
}

func TestPrintExprParenthesizesLooserSubexpression(t *testing.T) {
	// (a + b) * c must keep its parens.
	expr := js_ast.Expr{Data: &js_ast.EBinary{
		Op: js_ast.BinOpMul,
		Left: js_ast.Expr{Data: &js_ast.EBinary{
			Op:    js_ast.BinOpAdd,
			Left:  js_ast.Ident("a"),
			Right: js_ast.Ident("b"),
		}},
		Right: js_ast.Ident("c"),
	}}
	assert.Equal(t, "(a + b) * c", PrintExpr(expr, DefaultOptions()))
}

func TestPrintExprCallAndMember(t *testing.T) {
	expr := js_ast.Expr{Data: &js_ast.ECall{
		Callee: js_ast.ExprCallee(js_ast.Expr{Data: &js_ast.EMember{
			Obj:  js_ast.Ident("count"),
			Prop: js_ast.MemberProp{Ident: "getValue"},
		}}),
	}}
	assert.Equal(t, "count.getValue()", PrintExpr(expr, DefaultOptions()))
}

func TestPrintExprArrowWithExpressionBody(t *testing.T) {
	expr := js_ast.Expr{Data: &js_ast.EArrow{
		Params: []js_ast.Binding{{Data: &js_ast.BIdentifier{Name: "x"}}},
		Expr:   &js_ast.Expr{Data: &js_ast.EIdentifier{Name: "x"}},
	}}
	assert.Equal(t, "(x) => x", PrintExpr(expr, DefaultOptions()))
}

func TestPrintExprArrowWithBlockBody(t *testing.T) {
	ret := js_ast.Stmt{Data: &js_ast.SReturn{ValueOrNil: &js_ast.Expr{Data: &js_ast.ENumber{Value: 1}}}}
	expr := js_ast.Expr{Data: &js_ast.EArrow{
		Block: &js_ast.SBlock{Stmts: []js_ast.Stmt{ret}},
	}}
	assert.Equal(t, "() => {\n  return 1;\n}", PrintExpr(expr, DefaultOptions()))
}

func TestPrintStmtVarDeclWithInitializer(t *testing.T) {
	stmt := js_ast.Stmt{Data: &js_ast.SDecl{Decl: js_ast.Decl{Data: &js_ast.DVar{
		Kind: js_ast.VarConst,
		Declarators: []js_ast.Declarator{
			{
				Binding:    js_ast.Binding{Data: &js_ast.BIdentifier{Name: "x"}},
				ValueOrNil: &js_ast.Expr{Data: &js_ast.ENumber{Value: 2}},
			},
		},
	}}}}
	assert.Equal(t, "const x = 2;\n", PrintStmt(stmt, DefaultOptions()))
}

func TestPrintStmtIfElse(t *testing.T) {
	stmt := js_ast.Stmt{Data: &js_ast.SIf{
		Test: js_ast.Ident("flag"),
		Yes:  js_ast.Stmt{Data: &js_ast.SExpr{Value: js_ast.Expr{Data: &js_ast.ENumber{Value: 1}}}},
		NoOrNil: &js_ast.Stmt{Data: &js_ast.SExpr{Value: js_ast.Expr{Data: &js_ast.ENumber{Value: 2}}}},
	}}
	got := PrintStmt(stmt, DefaultOptions())
	assert.Contains(t, got, "if (flag) 1;\n")
	assert.Contains(t, got, "else 2;\n")
}

func TestPrintImportNamespace(t *testing.T) {
	ns := "viewmill"
	stmt := js_ast.Stmt{Data: &js_ast.SImport{NamespaceName: &ns, Path: "viewmill-runtime"}}
	assert.Equal(t, `import * as viewmill from "viewmill-runtime";`+"\n", PrintStmt(stmt, DefaultOptions()))
}

func TestPrintExprPanicsOnUntransformedJSX(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	PrintExpr(js_ast.Expr{Data: &js_ast.EJSXElement{}}, DefaultOptions())
}
