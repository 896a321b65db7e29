package tr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/js_printer"
	"github.com/viewmill/viewmill/internal/rtcall"
	"github.com/viewmill/viewmill/internal/scope"
)

func newCtx(s *scope.Scope) *rtcall.Context {
	return rtcall.New("", s)
}

func print(e js_ast.Expr) string {
	return js_printer.PrintExpr(e, js_printer.DefaultOptions())
}

func TestTrExprRewritesLiveIdentifierRead(t *testing.T) {
	s := scope.New()
	s.InsertItem("count", scope.Live)
	ctx := newCtx(s)

	expr := js_ast.Ident("count")
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"count"}, result.Names())
	assert.Equal(t, "count.getValue()", print(expr))
}

func TestTrExprLeavesNonLiveIdentifierAlone(t *testing.T) {
	s := scope.New()
	s.InsertItem("label", scope.Default)
	ctx := newCtx(s)

	expr := js_ast.Ident("label")
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.True(t, result.IsNone())
	assert.Equal(t, "label", print(expr))
}

func TestTrExprUnboundIdentifierIsNotLive(t *testing.T) {
	s := scope.New()
	ctx := newCtx(s)

	expr := js_ast.Ident("globalThis")
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.True(t, result.IsNone())
	assert.Equal(t, "globalThis", print(expr))
}

func TestTrExprBinaryUnionsDepsFromBothSides(t *testing.T) {
	s := scope.New()
	s.InsertItem("a", scope.Live)
	s.InsertItem("b", scope.Live)
	ctx := newCtx(s)

	expr := js_ast.Expr{Data: &js_ast.EBinary{
		Op:    js_ast.BinOpAdd,
		Left:  js_ast.Ident("a"),
		Right: js_ast.Ident("b"),
	}}
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Names())
	assert.Equal(t, "a.getValue() + b.getValue()", print(expr))
}

func TestTrExprAssignDoesNotRewriteBareIdentifierWriteTarget(t *testing.T) {
	s := scope.New()
	s.InsertItem("count", scope.Live)
	ctx := newCtx(s)

	expr := js_ast.Expr{Data: &js_ast.EAssign{
		Op:    js_ast.BinOpAssign,
		Left:  js_ast.ExprTarget(js_ast.Ident("count")),
		Right: js_ast.Expr{Data: &js_ast.ENumber{Value: 1}},
	}}
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.True(t, result.IsNone())
	assert.Equal(t, "count = 1", print(expr))
}

func TestTrExprAssignRewritesMemberWriteTargetObject(t *testing.T) {
	s := scope.New()
	s.InsertItem("state", scope.Live)
	ctx := newCtx(s)

	member := js_ast.Expr{Data: &js_ast.EMember{
		Obj:  js_ast.Ident("state"),
		Prop: js_ast.MemberProp{Ident: "count"},
	}}
	expr := js_ast.Expr{Data: &js_ast.EAssign{
		Op:    js_ast.BinOpAssign,
		Left:  js_ast.ExprTarget(member),
		Right: js_ast.Expr{Data: &js_ast.ENumber{Value: 1}},
	}}
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"state"}, result.Names())
	assert.Equal(t, "state.getValue().count = 1", print(expr))
}

func TestTrExprConditionalCollectsAllThreeBranches(t *testing.T) {
	s := scope.New()
	s.InsertItem("flag", scope.Live)
	ctx := newCtx(s)

	expr := js_ast.Expr{Data: &js_ast.ECond{
		Test: js_ast.Ident("flag"),
		Yes:  js_ast.Expr{Data: &js_ast.EString{Value: "yes"}},
		No:   js_ast.Expr{Data: &js_ast.EString{Value: "no"}},
	}}
	result, err := TrExpr(ctx, &expr, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"flag"}, result.Names())
}

func TestVarInitializerWrapsIdentifierInLiveCall(t *testing.T) {
	s := scope.New()
	s.InsertItem("n", scope.Live)
	ctx := newCtx(s)

	pat := js_ast.Binding{Data: &js_ast.BIdentifier{Name: "doubled"}}
	initExpr := js_ast.Expr{Data: &js_ast.EBinary{
		Op:    js_ast.BinOpMul,
		Left:  js_ast.Ident("n"),
		Right: js_ast.Expr{Data: &js_ast.ENumber{Value: 2}},
	}}

	newInit := varInitializer(ctx, &pat, initExpr, []string{"n"})
	require.NotNil(t, newInit)
	assert.Contains(t, print(*newInit), ".live(")
}

func TestTrVarDeclMarksDependentDeclaratorLive(t *testing.T) {
	s := scope.New()
	s.InsertItem("n", scope.Live)
	ctx := newCtx(s)

	decl := &js_ast.DVar{
		Kind: js_ast.VarConst,
		Declarators: []js_ast.Declarator{
			{
				Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "doubled"}},
				ValueOrNil: &js_ast.Expr{Data: &js_ast.EBinary{
					Op:    js_ast.BinOpMul,
					Left:  js_ast.Ident("n"),
					Right: js_ast.Expr{Data: &js_ast.ENumber{Value: 2}},
				}},
			},
		},
	}

	_, err := trVarDecl(ctx, decl, s)
	require.NoError(t, err)
	assert.True(t, s.IsLive("doubled"))
	assert.Contains(t, print(*decl.Declarators[0].ValueOrNil), ".live(")
}

func TestTrVarDeclLeavesNonReactiveDeclaratorAlone(t *testing.T) {
	s := scope.New()
	ctx := newCtx(s)

	decl := &js_ast.DVar{
		Kind: js_ast.VarConst,
		Declarators: []js_ast.Declarator{
			{
				Binding:    js_ast.Binding{Data: &js_ast.BIdentifier{Name: "label"}},
				ValueOrNil: &js_ast.Expr{Data: &js_ast.EString{Value: "hi"}},
			},
		},
	}

	_, err := trVarDecl(ctx, decl, s)
	require.NoError(t, err)
	assert.False(t, s.IsLive("label"))
	assert.Equal(t, `"hi"`, print(*decl.Declarators[0].ValueOrNil))
}

func TestTrBlockSeedsForwardReferencedFunctionDeclarations(t *testing.T) {
	s := scope.New()
	ctx := newCtx(s)

	block := &js_ast.SBlock{
		Stmts: []js_ast.Stmt{
			{Data: &js_ast.SExpr{Value: js_ast.Expr{Data: &js_ast.ECall{
				Callee: js_ast.ExprCallee(js_ast.Ident("helper")),
			}}}},
			{Data: &js_ast.SDecl{Decl: js_ast.Decl{Data: &js_ast.DFunction{
				Fn: js_ast.Fn{Name: strPtr("helper"), Body: js_ast.SBlock{}},
			}}}},
		},
	}

	_, err := TrBlock(ctx, block, s)
	require.NoError(t, err)
}

func TestTrExprReturnsInvalidNodeError(t *testing.T) {
	s := scope.New()
	ctx := newCtx(s)

	expr := js_ast.Expr{Data: &js_ast.EInvalid{}, Loc: js_ast.Loc{Start: 7}}
	_, err := TrExpr(ctx, &expr, s)
	require.Error(t, err)
	ine, ok := err.(*InvalidNodeError)
	require.True(t, ok)
	assert.Equal(t, int32(7), ine.Loc.Start)
}

func strPtr(s string) *string { return &s }
