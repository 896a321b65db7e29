package rtcall

import "github.com/viewmill/viewmill/internal/js_ast"

// objMethodCall builds `obj.method(args...)`, the shape every runtime
// primitive below compiles down to. Grounded on utils.rs's obj_method_call.
func objMethodCall(obj js_ast.Expr, method string, args []js_ast.Expr) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.ECall{
		Callee: js_ast.ExprCallee(js_ast.Expr{Data: &js_ast.EMember{
			Obj:  obj,
			Prop: js_ast.MemberProp{Ident: method},
		}}),
		Args: args,
	}}
}

// arrowShortExpr builds `(params) => (body)`, a thunk passed to runtime
// primitives that need to re-evaluate an expression lazily on every
// update. Grounded on utils.rs's arrow_short_expr.
func arrowShortExpr(params []js_ast.Binding, body js_ast.Expr) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EArrow{
		Params: params,
		Expr:   &js_ast.Expr{Data: &js_ast.EParen{Value: body}},
	}}
}

// arrowBlockExpr builds `(params) => { ...block }`.
func arrowBlockExpr(params []js_ast.Binding, block js_ast.SBlock) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EArrow{Params: params, Block: &block}}
}

func nullExpr() js_ast.Expr { return js_ast.Null() }

// depsExpr builds the dependency-array argument runtime primitives expect:
// `null` for no dependencies, otherwise an identifier array. Grounded on
// live.rs's deps_expr.
func depsExpr(names []string) js_ast.Expr {
	if len(names) == 0 {
		return nullExpr()
	}
	items := make([]js_ast.Expr, len(names))
	for i, n := range names {
		items[i] = js_ast.Ident(n)
	}
	return js_ast.Expr{Data: &js_ast.EArray{Items: items}}
}

// argsBuilder accumulates a runtime call's argument list. It exists purely
// for the same readability utils.rs's ArgsBuilder gives the Rust side —
// call sites read as a sequence of `.addExpr`/`.addStr` instead of manual
// append calls scattered through each primitive.
type argsBuilder struct{ args []js_ast.Expr }

func (b *argsBuilder) addExpr(e js_ast.Expr) *argsBuilder {
	b.args = append(b.args, e)
	return b
}

func (b *argsBuilder) addStr(s string) *argsBuilder {
	return b.addExpr(js_ast.String(s))
}

func (b *argsBuilder) build() []js_ast.Expr { return b.args }

// objLitBuilder accumulates an object literal's properties, collapsing a
// key/value pair into shorthand when both sides name the same identifier.
// Grounded on utils.rs's ObjLitBuilder.
type objLitBuilder struct{ props []js_ast.Property }

func (b *objLitBuilder) addKey(key string, value js_ast.Expr) *objLitBuilder {
	if ident, ok := value.Data.(*js_ast.EIdentifier); ok && ident.Name == key {
		return b.addShorthand(key)
	}
	b.props = append(b.props, js_ast.Property{
		Kind:  js_ast.PropertyNormal,
		Key:   js_ast.PropertyName{Ident: key},
		Value: value,
	})
	return b
}

func (b *objLitBuilder) addShorthand(name string) *objLitBuilder {
	b.props = append(b.props, js_ast.Property{
		Kind: js_ast.PropertyShorthand,
		Key:  js_ast.PropertyName{Ident: name},
	})
	return b
}

func (b *objLitBuilder) buildExpr() js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EObject{Properties: b.props}}
}

// objPatternShorthand builds `{ a, b, c }` as a binding pattern, used by
// View to destructure the props object an outer caller passes in.
func objPatternShorthand(names []string) js_ast.Binding {
	props := make([]js_ast.ObjectBindingProp, len(names))
	for i, n := range names {
		props[i] = js_ast.ObjectBindingProp{Kind: js_ast.OBPShorthand, Key: js_ast.PropertyName{Ident: n}}
	}
	return js_ast.Binding{Data: &js_ast.BObject{Properties: props}}
}
