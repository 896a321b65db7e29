package deps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewmill/viewmill/internal/deps"
	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/js_printer"
)

func TestValueNoneExtendAbsorbsOther(t *testing.T) {
	v := deps.None()
	assert.True(t, v.IsNone())
	v.Extend(deps.Deps("a", "b"))
	assert.Equal(t, []string{"a", "b"}, v.Names())
}

func TestValueExtendDedupsAndPreservesFirstOccurrence(t *testing.T) {
	v := deps.Deps("a", "b")
	v.Extend(deps.Deps("b", "c"))
	assert.Equal(t, []string{"a", "b", "c"}, v.Names())
}

func TestValueExtendNoneOnSetIsNoOp(t *testing.T) {
	v := deps.Deps("a")
	v.Extend(deps.None())
	assert.Equal(t, []string{"a"}, v.Names())
}

func TestFromArrayPatternFlattensNestedElements(t *testing.T) {
	pat := &js_ast.BArray{Items: []js_ast.ArrayBindingElem{
		{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "a"}}},
		{Binding: js_ast.Binding{Data: &js_ast.BArray{Items: []js_ast.ArrayBindingElem{
			{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "b"}}},
			{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "c"}}},
		}}}},
	}}
	d := deps.FromArrayPattern(pat)
	assert.Equal(t, []string{"a", "b", "c"}, d.Names())
}

func TestFromObjectPatternIncludesRestAndShorthand(t *testing.T) {
	pat := &js_ast.BObject{Properties: []js_ast.ObjectBindingProp{
		{Kind: js_ast.OBPShorthand, Key: js_ast.PropertyName{Ident: "a"}},
		{Kind: js_ast.OBPRest, Key: js_ast.PropertyName{Ident: "rest"}},
	}}
	d := deps.FromObjectPattern(pat)
	assert.Equal(t, []string{"a", "rest"}, d.Names())
}

func TestDestructArgToDeclPatFlattensToArrayOfIdentifiers(t *testing.T) {
	pat := &js_ast.BArray{Items: []js_ast.ArrayBindingElem{
		{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "a"}}},
		{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "b"}}},
	}}
	d := deps.FromArrayPattern(pat)
	declPat := d.ToDeclPat()
	got := js_printer.PrintExpr(js_ast.Expr{Data: &js_ast.EArrow{
		Params: []js_ast.Binding{declPat},
		Expr:   &js_ast.Expr{Data: &js_ast.ENumber{Value: 0}},
	}}, js_printer.DefaultOptions())
	assert.Equal(t, "([a, b]) => 0", got)
}

func TestDestructArgToExprBuildsCountAndRederiveArrow(t *testing.T) {
	pat := &js_ast.BArray{Items: []js_ast.ArrayBindingElem{
		{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "a"}}},
		{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "b"}}},
	}}
	d := deps.FromArrayPattern(pat)
	got := js_printer.PrintExpr(d.ToExpr(), js_printer.DefaultOptions())
	assert.Contains(t, got, "2, (")
	assert.Contains(t, got, "[a, b]")
}
