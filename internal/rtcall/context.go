// Package rtcall builds calls against the viewmill-runtime library: every
// primitive the transform lowers reactive constructs into (live cells,
// conditional/list/expression bindings, attribute and listener wiring,
// element construction, component instantiation, and the top-level view
// wrapper). One Context is built per module and threaded through
// internal/tr (tr.go and jsx.go).
//
// Grounded on original_source/transformer/src/context.rs (TrContext) and
// utils.rs (ArgsBuilder/ObjLitBuilder, ported as unexported helpers in
// utils.go).
package rtcall

import (
	"github.com/viewmill/viewmill/internal/deps"
	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/scope"
)

const (
	runtimeModule  = "viewmill-runtime"
	libPrefix      = "viewmill"
	unmountPrefix  = "unmountSignal"
)

// Context carries the two names every emitted runtime call needs: the
// namespace the runtime module was imported under, and the unmount signal
// identifier in scope at the current nesting level.
type Context struct {
	libName         string
	unmountSigName string
}

// New mints libName and unmountSigName against src (so neither can ever
// collide with anything in the original source, per scope.Uname) and
// registers both in the root scope. Grounded on TrContext::new.
func New(src string, s *scope.Scope) *Context {
	lib := scope.Uname(libPrefix, src)
	s.Insert(lib)
	sig := scope.Uname(unmountPrefix, src)
	s.Insert(sig)
	return &Context{libName: lib, unmountSigName: sig}
}

// Nested returns a Context sharing libName but scoped to a different
// unmount signal, used when entering a nested component's own body.
// Grounded on TrContext::nested.
func (c *Context) Nested(sigName string) *Context {
	return &Context{libName: c.libName, unmountSigName: sigName}
}

func (c *Context) LibName() string         { return c.libName }
func (c *Context) UnmountSigName() string { return c.unmountSigName }

// ImportDecl builds `import * as <libName> from "viewmill-runtime";`.
// Grounded on TrContext::import_decl.
func (c *Context) ImportDecl() js_ast.Stmt {
	ns := c.libName
	return js_ast.Stmt{Data: &js_ast.SImport{
		NamespaceName: &ns,
		Path:          runtimeModule,
	}}
}

func (c *Context) lib() js_ast.Expr { return js_ast.Ident(c.libName) }

// Live builds `lib.live(() => (expr), deps, destruct, unmountSig)`.
// Grounded on TrContext::live.
func (c *Context) Live(expr js_ast.Expr, depNames []string, destruct *deps.DestructArg) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(arrowShortExpr(nil, expr))
	b.addExpr(depsExpr(depNames))
	if destruct != nil {
		b.addExpr(destruct.ToExpr())
	} else {
		b.addExpr(nullExpr())
	}
	b.addExpr(js_ast.Ident(c.unmountSigName))
	return objMethodCall(c.lib(), "live", b.build())
}

// Param builds `lib.param(initial)`. Grounded on TrContext::param.
func (c *Context) Param(initial js_ast.Expr) js_ast.Expr {
	return objMethodCall(c.lib(), "param", []js_ast.Expr{initial})
}

// Cond builds `lib.cond(() => (test), () => (cons), () => (alt), deps)`.
// Grounded on TrContext::condition.
func (c *Context) Cond(test, cons, alt js_ast.Expr, depNames []string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(arrowShortExpr(nil, test)).
		addExpr(arrowShortExpr(nil, cons)).
		addExpr(arrowShortExpr(nil, alt)).
		addExpr(depsExpr(depNames))
	return objMethodCall(c.lib(), "cond", b.build())
}

// Expr builds `lib.expr(() => (expr), deps)`. Grounded on
// TrContext::expression.
func (c *Context) Expr(expr js_ast.Expr, depNames []string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(arrowShortExpr(nil, expr)).addExpr(depsExpr(depNames))
	return objMethodCall(c.lib(), "expr", b.build())
}

// List builds `lib.list(() => (expr)[, deps])`; a nil deps omits the
// dependency argument entirely rather than passing null, matching
// TrContext::list's `Option<&Vec<JsWord>>`.
func (c *Context) List(expr js_ast.Expr, depNames *[]string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(arrowShortExpr(nil, expr))
	if depNames != nil {
		b.addExpr(depsExpr(*depNames))
	}
	return objMethodCall(c.lib(), "list", b.build())
}

// Attr builds `lib.attr(node, "name", value)` for a static attribute, or
// `lib.attr(node, "name", () => (value), deps[, sig])` for a live one.
// Grounded on TrContext::attr.
func (c *Context) Attr(nodeName, name string, value js_ast.Expr, depNames *[]string, sig *string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(js_ast.Ident(nodeName))
	b.addStr(name)
	if depNames != nil {
		b.addExpr(arrowShortExpr(nil, value))
		b.addExpr(depsExpr(*depNames))
		if sig != nil {
			b.addExpr(js_ast.Ident(*sig))
		}
	} else {
		b.addExpr(value)
	}
	return objMethodCall(c.lib(), "attr", b.build())
}

// Attrs builds `lib.attrs(node, value[, deps[, sig]])`, the spread-props
// counterpart of Attr. Grounded on TrContext::attrs.
func (c *Context) Attrs(nodeName string, value js_ast.Expr, depNames *[]string, sig *string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(js_ast.Ident(nodeName))
	if depNames != nil {
		b.addExpr(arrowShortExpr(nil, value))
		b.addExpr(depsExpr(*depNames))
		if sig != nil {
			b.addExpr(js_ast.Ident(*sig))
		}
	} else {
		b.addExpr(value)
	}
	return objMethodCall(c.lib(), "attrs", b.build())
}

// El builds `lib.el(html[, func])`, the static-template-plus-imperative-
// body element constructor. Grounded on TrContext::element.
func (c *Context) El(html *string, fn *js_ast.Expr) js_ast.Expr {
	b := &argsBuilder{}
	if html != nil {
		b.addStr(*html)
	} else {
		b.addStr("")
	}
	if fn != nil {
		b.addExpr(*fn)
	}
	return objMethodCall(c.lib(), "el", b.build())
}

// Insert builds `lib.insert(expr, target, anchor)`. Grounded on
// TrContext::insert.
func (c *Context) Insert(expr js_ast.Expr, targetName, anchorName string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(expr).addExpr(js_ast.Ident(targetName)).addExpr(js_ast.Ident(anchorName))
	return objMethodCall(c.lib(), "insert", b.build())
}

// UnmountOn builds `lib.unmountOn(unmountSig, expr)`. Grounded on
// TrContext::unmount_on.
func (c *Context) UnmountOn(expr js_ast.Expr) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(js_ast.Ident(c.unmountSigName)).addExpr(expr)
	return objMethodCall(c.lib(), "unmountOn", b.build())
}

// Listen builds `lib.listen(target, "event", cb[, deps[, sig]])`.
// Grounded on TrContext::listen.
func (c *Context) Listen(targetName, eventName string, cb js_ast.Expr, depNames *[]string, sig *string) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(js_ast.Ident(targetName)).addStr(eventName).addExpr(cb)
	if depNames != nil {
		b.addExpr(depsExpr(*depNames))
		if sig != nil {
			b.addExpr(js_ast.Ident(*sig))
		}
	}
	return objMethodCall(c.lib(), "listen", b.build())
}

// Cmp builds `lib.cmp(name, props)`, instantiating a nested component.
// Grounded on TrContext::cmp.
func (c *Context) Cmp(name, props js_ast.Expr) js_ast.Expr {
	b := &argsBuilder{}
	b.addExpr(name).addExpr(props)
	return objMethodCall(c.lib(), "cmp", b.build())
}

// View builds `lib.view({ p: lib.param(p), ... }, ({ p, ... }, unmountSig)
// => body)`, the top-level wrapper every transformed default export is
// rewritten into. Grounded on TrContext::view.
func (c *Context) View(params []string, block *js_ast.SBlock, expr *js_ast.Expr) js_ast.Expr {
	initObj := &objLitBuilder{}
	for _, p := range params {
		initObj.addKey(p, c.Param(js_ast.Ident(p)))
	}

	bodyParams := []js_ast.Binding{
		objPatternShorthand(params),
		{Data: &js_ast.BIdentifier{Name: c.unmountSigName}},
	}
	var bodyArrow js_ast.Expr
	if block != nil {
		bodyArrow = arrowBlockExpr(bodyParams, *block)
	} else {
		bodyArrow = arrowShortExpr(bodyParams, *expr)
	}

	b := &argsBuilder{}
	b.addExpr(initObj.buildExpr()).addExpr(bodyArrow)
	return objMethodCall(c.lib(), "view", b.build())
}
