// JSX lowering: turns a tree of EJSXElement/EJSXFragment nodes into a
// static HTML template string plus an imperative "wiring" function that
// locates the dynamic positions inside the cloned template (via DOM
// traversal from the template's root) and installs attributes, event
// listeners, and child insertions against them. Grounded on
// original_source/transformer/src/jsx.rs; see tr.go's package doc for why
// this lives alongside the statement/expression traverser rather than in
// its own package.
package tr

import (
	"regexp"
	"strings"

	"github.com/viewmill/viewmill/internal/deps"
	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/rtcall"
	"github.com/viewmill/viewmill/internal/scope"
)

var jsxWhitespaceRE = regexp.MustCompile(`\s+`)

// normalizeText collapses runs of whitespace the way JSX source formatting
// is supposed to disappear at build time: multiple spaces/newlines between
// tags become a single space, and a text node that is pure whitespace
// contributes nothing at all.
func normalizeText(s string) string {
	return jsxWhitespaceRE.ReplaceAllString(s, " ")
}

func escapeHTMLText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeAttrValue(s string) string {
	r := strings.NewReplacer("&", "&amp;", `"`, "&quot;")
	return r.Replace(s)
}

// NodePath is a chain of firstChild/nextSibling steps from a cloned
// template's root node, the only two DOM accessors the lowering needs to
// name any node in a static template. Grounded on jsx.rs's NodePath
// (Root/FirstOf/NextTo).
type NodePath struct{ segs []string }

func Root() NodePath { return NodePath{} }

func FirstOf(p NodePath) NodePath { return p.step("firstChild") }

func NextTo(p NodePath) NodePath { return p.step("nextSibling") }

func (p NodePath) step(name string) NodePath {
	segs := make([]string, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = name
	return NodePath{segs: segs}
}

func (p NodePath) IsRoot() bool { return len(p.segs) == 0 }

func (p NodePath) key() string { return strings.Join(p.segs, ".") }

// ToExpr builds the member-access chain that reaches this path's node
// starting from rootName, e.g. Root().firstChild.nextSibling.
func (p NodePath) ToExpr(rootName string) js_ast.Expr {
	e := js_ast.Ident(rootName)
	for _, seg := range p.segs {
		e = js_ast.Expr{Data: &js_ast.EMember{Obj: e, Prop: js_ast.MemberProp{Ident: seg}}}
	}
	return e
}

// ElName classifies a JSX tag name: a lowercase-initial plain identifier
// (or namespaced/colon name) is a static HTML tag; anything else (an
// uppercase-initial identifier or a member expression like "Foo.Bar") is a
// component reference whose value is looked up at runtime.
type ElName struct {
	IsComponent bool
	Expr        js_ast.Expr
	Tag         string
}

func isComponentIdent(ident string) bool {
	if ident == "" {
		return false
	}
	c := ident[0]
	return c >= 'A' && c <= 'Z'
}

func jsxNameToExpr(name js_ast.JSXName) js_ast.Expr {
	if name.Member != nil {
		obj := jsxNameToExpr(*name.Member.Obj)
		return js_ast.Expr{Data: &js_ast.EMember{Obj: obj, Prop: js_ast.MemberProp{Ident: name.Member.Property}}}
	}
	return js_ast.Ident(name.Ident)
}

func nameFromJSX(name js_ast.JSXName) ElName {
	switch {
	case name.Member != nil:
		return ElName{IsComponent: true, Expr: jsxNameToExpr(name)}
	case name.Namespace != nil:
		return ElName{Tag: name.Namespace.NS + ":" + name.Namespace.Name}
	case isComponentIdent(name.Ident):
		return ElName{IsComponent: true, Expr: js_ast.Ident(name.Ident)}
	default:
		return ElName{Tag: name.Ident}
	}
}

func attrNameString(name js_ast.JSXAttrName) string {
	if name.Namespace != nil {
		return name.Namespace.NS + ":" + name.Namespace.Name
	}
	return name.Ident
}

// isEventAttrName recognizes the "onClick"/"onInput" JSX convention and
// returns the lowercased DOM event name it refers to.
func isEventAttrName(name string) (string, bool) {
	if len(name) < 3 || !strings.HasPrefix(name, "on") {
		return "", false
	}
	c := name[2]
	if c < 'A' || c > 'Z' {
		return "", false
	}
	return strings.ToLower(name[2:]), true
}

func declStmt(name string, value js_ast.Expr) js_ast.Stmt {
	return js_ast.Stmt{Data: &js_ast.SDecl{Decl: js_ast.Decl{Data: &js_ast.DVar{
		Kind: js_ast.VarConst,
		Declarators: []js_ast.Declarator{
			{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: name}}, ValueOrNil: &value},
		},
	}}}}
}

func exprStmt(e js_ast.Expr) js_ast.Stmt {
	return js_ast.Stmt{Data: &js_ast.SExpr{Value: e}}
}

// elFrame tracks, for one currently-open element, the path to reach it and
// the path of the last child appended to it so far (nil before its first
// child), the two pieces of state NodePath construction needs as children
// are appended left to right.
type elFrame struct {
	parentPath NodePath
	lastChild  *NodePath
}

// elBuilder accumulates one root HTML element's static template text and
// the imperative statements that wire its dynamic positions, shared across
// the whole recursive descent into its children so every nested node's
// wiring lands in the same function passed to rtcall.Context.El.
type elBuilder struct {
	s        *scope.Scope
	rootName string
	html     strings.Builder
	body     []js_ast.Stmt
	frames   []elFrame
	locals   map[string]string
}

func newElBuilder(s *scope.Scope) *elBuilder {
	return &elBuilder{
		rootName: s.InsertStrPrefixed("el"),
		s:        s,
		locals:   make(map[string]string),
	}
}

func (b *elBuilder) enter(path NodePath) {
	b.frames = append(b.frames, elFrame{parentPath: path})
}

func (b *elBuilder) exit() {
	b.frames = b.frames[:len(b.frames)-1]
}

// nextChildPath reports the path of the next child about to be appended to
// whichever element is currently open, and records it as that element's
// last child for the sibling after it.
func (b *elBuilder) nextChildPath() NodePath {
	f := &b.frames[len(b.frames)-1]
	var p NodePath
	if f.lastChild == nil {
		p = FirstOf(f.parentPath)
	} else {
		p = NextTo(*f.lastChild)
	}
	f.lastChild = &p
	return p
}

// localFor returns the identifier bound to path's node, minting and
// declaring it the first time path is requested. The root path needs no
// declaration: it is exactly the wiring function's own parameter.
func (b *elBuilder) localFor(path NodePath) string {
	if path.IsRoot() {
		return b.rootName
	}
	key := path.key()
	if name, ok := b.locals[key]; ok {
		return name
	}
	name := b.s.InsertStrPrefixed("n")
	b.body = append(b.body, declStmt(name, path.ToExpr(b.rootName)))
	b.locals[key] = name
	return name
}

func (b *elBuilder) addStmt(stmt js_ast.Stmt) { b.body = append(b.body, stmt) }

// build wraps the accumulated template and wiring statements in a single
// rtcall.Context.El call; an empty wiring body omits the function argument
// entirely for a purely static template.
func (b *elBuilder) build(ctx *rtcall.Context) js_ast.Expr {
	html := b.html.String()
	if len(b.body) == 0 {
		return ctx.El(&html, nil)
	}
	fn := js_ast.Expr{Data: &js_ast.EArrow{
		Params: []js_ast.Binding{{Data: &js_ast.BIdentifier{Name: b.rootName}}},
		Block:  &js_ast.SBlock{Stmts: b.body},
	}}
	return ctx.El(&html, &fn)
}

// LowerRootElement lowers the JSX element a traversed expression position
// held: a component reference becomes a direct rtcall.Context.Cmp call,
// while a plain HTML tag becomes a fresh Context.El-wrapped template. Grounded
// on jsx.rs's tr_root_el.
func LowerRootElement(ctx *rtcall.Context, el *js_ast.EJSXElement, s *scope.Scope) (js_ast.Expr, error) {
	name := nameFromJSX(el.Opening.Name)
	if name.IsComponent {
		return trCmp(ctx, el, name, s)
	}
	b := newElBuilder(s)
	b.enter(Root())
	if err := trHtmlEl(ctx, el, name.Tag, s, b); err != nil {
		return js_ast.Expr{}, err
	}
	b.exit()
	return b.build(ctx), nil
}

// LowerRootFragment lowers a JSX fragment to a plain array of its
// children's lowered values; a fragment has no element of its own to
// anchor a template against. Grounded on jsx.rs's tr_root_frag.
func LowerRootFragment(ctx *rtcall.Context, frag *js_ast.EJSXFragment, s *scope.Scope) (js_ast.Expr, error) {
	items := make([]js_ast.Expr, 0, len(frag.Children))
	for i := range frag.Children {
		e, err := lowerFragmentChildValue(ctx, &frag.Children[i], s)
		if err != nil {
			return js_ast.Expr{}, err
		}
		if e != nil {
			items = append(items, *e)
		}
	}
	return js_ast.Expr{Data: &js_ast.EArray{Items: items}}, nil
}

// lowerFragmentChildValue lowers one JSXChild to a bare value expression,
// used both for fragment children and for a component's "children" prop,
// neither of which has a parent DOM node to anchor an insertion against —
// unlike trElChild, which wires an insertion into an enclosing element's
// template.
func lowerFragmentChildValue(ctx *rtcall.Context, child *js_ast.JSXChild, s *scope.Scope) (*js_ast.Expr, error) {
	switch {
	case child.Text != nil:
		text := normalizeText(*child.Text)
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		e := js_ast.String(text)
		return &e, nil
	case child.Expr != nil:
		if child.Expr.Expr.Data == nil {
			return nil, nil
		}
		e := child.Expr.Expr
		result, err := TrExpr(ctx, &e, s)
		if err != nil {
			return nil, err
		}
		wrapped := wrapChildExpr(ctx, e, result)
		return &wrapped, nil
	case child.Spread != nil:
		e, err := trChildSpread(ctx, *child.Spread, s)
		if err != nil {
			return nil, err
		}
		return &e, nil
	case child.Element != nil:
		name := nameFromJSX(child.Element.Opening.Name)
		var e js_ast.Expr
		var err error
		if name.IsComponent {
			e, err = trCmp(ctx, child.Element, name, s)
		} else {
			e, err = LowerRootElement(ctx, child.Element, s)
		}
		if err != nil {
			return nil, err
		}
		return &e, nil
	case child.Fragment != nil:
		e, err := LowerRootFragment(ctx, child.Fragment, s)
		if err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, nil
	}
}

// wrapChildExpr turns an expression-container child into its lowered form.
// With no live deps, "a && b" sugars to a plain ternary "a ? b : null" and
// anything else passes through unwrapped; with live deps, a ternary or "&&"
// becomes an rtcall.Context.Cond call and anything else a Context.Expr call.
// Grounded on jsx.rs's tr_child_expr_container.
func wrapChildExpr(ctx *rtcall.Context, expr js_ast.Expr, result deps.Value) js_ast.Expr {
	if result.IsNone() {
		if bin, ok := expr.Data.(*js_ast.EBinary); ok && bin.Op == js_ast.BinOpLogicalAnd {
			return js_ast.Expr{Data: &js_ast.ECond{Test: bin.Left, Yes: bin.Right, No: js_ast.Null()}}
		}
		return expr
	}
	names := result.Names()
	switch e := expr.Data.(type) {
	case *js_ast.ECond:
		return ctx.Cond(e.Test, e.Yes, e.No, names)
	case *js_ast.EBinary:
		if e.Op == js_ast.BinOpLogicalAnd {
			return ctx.Cond(e.Left, e.Right, js_ast.Null(), names)
		}
	}
	return ctx.Expr(expr, names)
}

// trChildSpread lowers a spread child ("{...expr}") to an rtcall.Context.List
// call; unlike an ordinary expression-container child it is always a list
// binding regardless of the expression's shape. Grounded on jsx.rs's
// tr_child_spread.
func trChildSpread(ctx *rtcall.Context, expr js_ast.Expr, s *scope.Scope) (js_ast.Expr, error) {
	result, err := TrExpr(ctx, &expr, s)
	if err != nil {
		return js_ast.Expr{}, err
	}
	var depsPtr *[]string
	if !result.IsNone() {
		names := result.Names()
		depsPtr = &names
	}
	return ctx.List(expr, depsPtr), nil
}

// trHtmlEl writes el's opening tag and attributes into b's template,
// recurses into its children, and closes the tag, mirroring jsx.rs's
// tr_html_el.
func trHtmlEl(ctx *rtcall.Context, el *js_ast.EJSXElement, tag string, s *scope.Scope, b *elBuilder) error {
	b.html.WriteString("<")
	b.html.WriteString(tag)
	rootLocal := b.localFor(b.frames[len(b.frames)-1].parentPath)
	for i := range el.Opening.Attrs {
		if err := trElAttr(ctx, &el.Opening.Attrs[i], rootLocal, s, b); err != nil {
			return err
		}
	}
	if el.Opening.SelfClosing {
		b.html.WriteString("/>")
		return nil
	}
	b.html.WriteString(">")
	for i := range el.Children {
		if err := trElChild(ctx, &el.Children[i], s, b); err != nil {
			return err
		}
	}
	b.html.WriteString("</")
	b.html.WriteString(tag)
	b.html.WriteString(">")
	return nil
}

// trElAttr handles one HTML-element attribute: a literal string or boolean
// attribute is written straight into the template text; an expression
// value is wired at runtime via rtcall.Context.Attr or, for the "onEvent"
// naming convention, Context.Listen. Grounded on jsx.rs's tr_el_attr.
func trElAttr(ctx *rtcall.Context, attr *js_ast.JSXAttrOrSpread, targetLocal string, s *scope.Scope, b *elBuilder) error {
	if attr.IsSpread {
		result, err := TrExpr(ctx, &attr.Spread, s)
		if err != nil {
			return err
		}
		var depsPtr *[]string
		if !result.IsNone() {
			names := result.Names()
			depsPtr = &names
		}
		b.addStmt(exprStmt(ctx.Attrs(targetLocal, attr.Spread, depsPtr, nil)))
		return nil
	}

	name := attrNameString(attr.Name)
	if attr.Value == nil {
		b.html.WriteString(" ")
		b.html.WriteString(name)
		return nil
	}
	if attr.Value.Str != nil {
		b.html.WriteString(" ")
		b.html.WriteString(name)
		b.html.WriteString(`="`)
		b.html.WriteString(escapeAttrValue(*attr.Value.Str))
		b.html.WriteString(`"`)
		return nil
	}

	expr := *attr.Value.Expr
	result, err := TrExpr(ctx, &expr, s)
	if err != nil {
		return err
	}
	if event, ok := isEventAttrName(name); ok {
		b.addStmt(exprStmt(ctx.Listen(targetLocal, event, expr, nil, nil)))
		return nil
	}
	var depsPtr *[]string
	if !result.IsNone() {
		names := result.Names()
		depsPtr = &names
	}
	b.addStmt(exprStmt(ctx.Attr(targetLocal, name, expr, depsPtr, nil)))
	return nil
}

// trElChild lowers one child of an HTML element: text is inlined directly
// into the template (or dropped if it is pure whitespace); every other
// child kind occupies an anchor comment node in the template and is wired
// up with rtcall.Context.Insert. Grounded on jsx.rs's tr_el_child /
// tr_child_text / tr_child_expr_container / tr_child_spread / tr_child_el /
// tr_child_frag.
func trElChild(ctx *rtcall.Context, child *js_ast.JSXChild, s *scope.Scope, b *elBuilder) error {
	if child.Text != nil {
		text := normalizeText(*child.Text)
		if strings.TrimSpace(text) == "" {
			return nil
		}
		b.nextChildPath()
		b.html.WriteString(escapeHTMLText(text))
		return nil
	}
	if child.Expr != nil && child.Expr.Expr.Data == nil {
		return nil
	}

	path := b.nextChildPath()
	b.html.WriteString("<!>")

	switch {
	case child.Expr != nil:
		if child.Expr.Expr.Data == nil {
			return nil
		}
		e := child.Expr.Expr
		result, err := TrExpr(ctx, &e, s)
		if err != nil {
			return err
		}
		wrapped := wrapChildExpr(ctx, e, result)
		parentLocal := b.localFor(b.frames[len(b.frames)-1].parentPath)
		anchorLocal := b.localFor(path)
		b.addStmt(exprStmt(ctx.Insert(wrapped, parentLocal, anchorLocal)))
		return nil

	case child.Spread != nil:
		lowered, err := trChildSpread(ctx, *child.Spread, s)
		if err != nil {
			return err
		}
		parentLocal := b.localFor(b.frames[len(b.frames)-1].parentPath)
		anchorLocal := b.localFor(path)
		b.addStmt(exprStmt(ctx.Insert(lowered, parentLocal, anchorLocal)))
		return nil

	case child.Element != nil:
		name := nameFromJSX(child.Element.Opening.Name)
		var lowered js_ast.Expr
		var err error
		if name.IsComponent {
			lowered, err = trCmp(ctx, child.Element, name, s)
		} else {
			lowered, err = LowerRootElement(ctx, child.Element, s)
		}
		if err != nil {
			return err
		}
		parentLocal := b.localFor(b.frames[len(b.frames)-1].parentPath)
		anchorLocal := b.localFor(path)
		b.addStmt(exprStmt(ctx.Insert(lowered, parentLocal, anchorLocal)))
		return nil

	case child.Fragment != nil:
		lowered, err := LowerRootFragment(ctx, child.Fragment, s)
		if err != nil {
			return err
		}
		parentLocal := b.localFor(b.frames[len(b.frames)-1].parentPath)
		anchorLocal := b.localFor(path)
		b.addStmt(exprStmt(ctx.Insert(lowered, parentLocal, anchorLocal)))
		return nil
	}
	return nil
}

// trCmp instantiates a component reference: its attributes become a props
// object (spreads collapse into object spreads, "onEvent" attributes stay
// plain callback props rather than DOM listeners since there is no DOM
// node yet to attach them to), and its children, if any, become the
// conventional "children" prop. Grounded on jsx.rs's tr_cmp.
//
// A bare live identifier used as a prop value ("prop={count}") is passed
// through as the live cell itself rather than its current value, so the
// child component can subscribe to it directly instead of receiving a
// single snapshot — see DESIGN.md's note on this open question.
func trCmp(ctx *rtcall.Context, el *js_ast.EJSXElement, name ElName, s *scope.Scope) (js_ast.Expr, error) {
	var props []js_ast.Property
	for i := range el.Opening.Attrs {
		attr := &el.Opening.Attrs[i]
		if attr.IsSpread {
			if _, err := TrExpr(ctx, &attr.Spread, s); err != nil {
				return js_ast.Expr{}, err
			}
			props = append(props, js_ast.NewSpreadProperty(attr.Spread))
			continue
		}
		key := attrNameString(attr.Name)
		var value js_ast.Expr
		switch {
		case attr.Value == nil:
			value = js_ast.Bool(true)
		case attr.Value.Str != nil:
			value = js_ast.String(*attr.Value.Str)
		default:
			value = *attr.Value.Expr
			if ident, ok := value.Data.(*js_ast.EIdentifier); ok && s.IsLive(ident.Name) {
				// Bare live identifier: pass the cell through untouched.
			} else {
				if _, err := TrExpr(ctx, &value, s); err != nil {
					return js_ast.Expr{}, err
				}
			}
		}
		props = append(props, js_ast.Property{
			Kind:  js_ast.PropertyNormal,
			Key:   js_ast.PropertyName{Ident: key},
			Value: value,
		})
	}

	if len(el.Children) > 0 {
		childrenValue, err := childrenToValue(ctx, el.Children, s)
		if err != nil {
			return js_ast.Expr{}, err
		}
		props = append(props, js_ast.Property{
			Kind:  js_ast.PropertyNormal,
			Key:   js_ast.PropertyName{Ident: "children"},
			Value: childrenValue,
		})
	}

	propsExpr := js_ast.Expr{Data: &js_ast.EObject{Properties: props}}
	return ctx.Cmp(name.Expr, propsExpr), nil
}

// childrenToValue lowers a component's JSX children the same way a
// fragment's children are lowered: a single child collapses to its bare
// value rather than a one-element array, matching the common convention
// that "children" is the element itself when there is only one.
func childrenToValue(ctx *rtcall.Context, children []js_ast.JSXChild, s *scope.Scope) (js_ast.Expr, error) {
	items := make([]js_ast.Expr, 0, len(children))
	for i := range children {
		e, err := lowerFragmentChildValue(ctx, &children[i], s)
		if err != nil {
			return js_ast.Expr{}, err
		}
		if e != nil {
			items = append(items, *e)
		}
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return js_ast.Expr{Data: &js_ast.EArray{Items: items}}, nil
}
