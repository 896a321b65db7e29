package rtcall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/js_printer"
	"github.com/viewmill/viewmill/internal/rtcall"
	"github.com/viewmill/viewmill/internal/scope"
)

func print(e js_ast.Expr) string {
	return js_printer.PrintExpr(e, js_printer.DefaultOptions())
}

func TestNewMintsCollisionFreeNamesAndRegistersThemInScope(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("no collisions here", s)
	assert.Equal(t, "viewmill", ctx.LibName())
	assert.Equal(t, "unmountSignal", ctx.UnmountSigName())
	assert.False(t, s.IsLive("viewmill"))
}

func TestNewAvoidsNamesAlreadyPresentInSource(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("const viewmill = 1;", s)
	assert.NotEqual(t, "viewmill", ctx.LibName())
}

func TestImportDeclPrintsNamespaceImportOfRuntimeModule(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	got := js_printer.PrintStmt(ctx.ImportDecl(), js_printer.DefaultOptions())
	assert.Contains(t, got, "import * as "+ctx.LibName()+" from \"viewmill-runtime\"")
}

func TestLiveBuildsCallWithDepsAndUnmountSignal(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	expr := ctx.Live(js_ast.Ident("n"), []string{"n"}, nil)
	got := print(expr)
	require.Contains(t, got, ctx.LibName()+".live(")
	assert.Contains(t, got, ctx.UnmountSigName())
	assert.Contains(t, got, `[n]`)
}

func TestParamBuildsSingleArgCall(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	expr := ctx.Param(js_ast.Ident("initial"))
	assert.Equal(t, ctx.LibName()+".param(initial)", print(expr))
}

func TestListOmitsDepsArgumentWhenNil(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	expr := ctx.List(js_ast.Ident("items"), nil)
	assert.Equal(t, ctx.LibName()+".list(() => (items))", print(expr))
}

func TestListIncludesDepsArgumentWhenProvided(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	names := []string{"items"}
	expr := ctx.List(js_ast.Ident("items"), &names)
	got := print(expr)
	assert.Contains(t, got, ctx.LibName()+".list(")
	assert.Contains(t, got, `[items]`)
}

func TestViewBuildsParamInitObjectAndDestructuredArrow(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	ret := js_ast.Stmt{Data: &js_ast.SReturn{ValueOrNil: &js_ast.Expr{Data: &js_ast.ENumber{Value: 1}}}}
	block := &js_ast.SBlock{Stmts: []js_ast.Stmt{ret}}
	expr := ctx.View([]string{"label"}, block, nil)
	got := print(expr)
	assert.Contains(t, got, ctx.LibName()+".view(")
	assert.Contains(t, got, ctx.LibName()+".param(label)")
	assert.Contains(t, got, ctx.UnmountSigName())
}

func TestNestedSharesLibNameButOverridesUnmountSignal(t *testing.T) {
	s := scope.New()
	ctx := rtcall.New("", s)
	nested := ctx.Nested("innerSig")
	assert.Equal(t, ctx.LibName(), nested.LibName())
	assert.Equal(t, "innerSig", nested.UnmountSigName())
}
