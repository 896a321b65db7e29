package js_ast

// JSXName is a tag or attribute name: a plain identifier ("div"), a
// member expression ("Foo.Bar"), or a namespaced name ("xml:lang").
type JSXName struct {
	Ident     string
	Member    *JSXMemberExpr
	Namespace *JSXNamespacedName
}

type JSXMemberExpr struct {
	// Obj is itself a JSXName so "a.b.c" nests; Member.Obj.Ident == "a", etc.
	Obj      *JSXName
	Property string
}

type JSXNamespacedName struct {
	NS   string
	Name string
}

type JSXAttrName struct {
	Ident     string
	Namespace *JSXNamespacedName
}

// JSXAttrValue is one of: a plain string literal, an expression container
// ("{expr}"), or absent (a boolean attribute, "disabled").
type JSXAttrValue struct {
	Str  *string
	Expr *Expr
}

type JSXAttrOrSpread struct {
	// IsSpread set means Spread holds "...expr"; otherwise Name/Value apply.
	IsSpread bool
	Spread   Expr
	Name     JSXAttrName
	Value    *JSXAttrValue // nil for a boolean attribute
}

type JSXOpeningElement struct {
	Name       JSXName
	Attrs      []JSXAttrOrSpread
	SelfClosing bool
}

// JSXChild is one child of an element or fragment: an element, a fragment,
// an expression container ("{expr}"), a spread child ("{...expr}"), or
// text.
type JSXChild struct {
	Element  *EJSXElement
	Fragment *EJSXFragment
	Expr     *JSXExprContainer
	Spread   *Expr
	Text     *string
}

// JSXExprContainer holds "{expr}" in child position; Expr.Data is nil for
// an empty container ("{}") or a JSX comment ("{/* ... */}"), both of which
// lower to nothing.
type JSXExprContainer struct {
	Expr Expr
}

type EJSXElement struct {
	Opening  JSXOpeningElement
	Children []JSXChild
}

type EJSXFragment struct {
	Children []JSXChild
}
