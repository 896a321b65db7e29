// Package driver runs the per-module pass: it seeds the root scope, wires
// up a runtime call Context, rewrites the module's default export into a
// view(...) call, and prepends the runtime import. Everything else (the
// expression/statement traversal itself, JSX lowering) lives in
// internal/tr; this package only knows where a module's reactive root is
// and how to wrap it.
//
// Grounded on original_source/transformer/src/lib.rs's Transformer
// (visit_mut_export_default_expr / visit_mut_export_default_decl /
// visit_mut_module) and its view_func helper.
package driver

import (
	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/logger"
	"github.com/viewmill/viewmill/internal/rtcall"
	"github.com/viewmill/viewmill/internal/scope"
	"github.com/viewmill/viewmill/internal/tr"
)

// Transform rewrites module in place: every top-level default export
// arrow/function becomes a reactive view, and the runtime import is
// prepended. Parse errors recovered by the AST provider are expected to
// already be in log; Transform only adds errors it discovers itself
// (invalid nodes reached during traversal), mirroring lib.rs's
// swc_errors::HANDLER.span_err calls, which don't abort the walk.
func Transform(module *js_ast.Module, src string, log logger.Log, source *logger.Source) {
	rootScope := scope.SeedFromModule(module)
	ctx := rtcall.New(src, rootScope)

	for i := range module.Stmts {
		stmt := &module.Stmts[i]
		switch d := stmt.Data.(type) {
		case *js_ast.SExportDefaultExpr:
			transformDefaultExpr(ctx, d, rootScope, log, source)
		case *js_ast.SExportDefaultDecl:
			transformDefaultDecl(ctx, d, rootScope, log, source)
		}
	}

	importStmt := ctx.ImportDecl()
	module.Stmts = append([]js_ast.Stmt{importStmt}, module.Stmts...)
}

// seedModuleDecls registers the top-level function, class and variable
// declarations as Default; imports and TS declarations are not covered.
// Transform seeds its root scope with scope.SeedFromModule, which covers
// all of them.
func seedModuleDecls(s *scope.Scope, module *js_ast.Module) {
	for _, stmt := range module.Stmts {
		seedStmt(s, stmt)
	}
}

func seedStmt(s *scope.Scope, stmt js_ast.Stmt) {
	switch d := stmt.Data.(type) {
	case *js_ast.SDecl:
		seedDecl(s, d.Decl)
	case *js_ast.SExportNamedDecl:
		if d.Decl != nil {
			seedDecl(s, *d.Decl)
		}
	case *js_ast.SExportDefaultDecl:
		seedDecl(s, d.Decl)
	}
}

func seedDecl(s *scope.Scope, decl js_ast.Decl) {
	switch d := decl.Data.(type) {
	case *js_ast.DFunction:
		if d.Fn.Name != nil {
			s.InsertItem(*d.Fn.Name, scope.Default)
		}
	case *js_ast.DClass:
		if d.Class.Name != nil {
			s.InsertItem(*d.Class.Name, scope.Default)
		}
	case *js_ast.DVar:
		for _, decl := range d.Declarators {
			s.InsertPatItem(decl.Binding, scope.Default)
		}
	}
}

// transformDefaultExpr handles `export default (props) => { ... }` /
// `export default (props) => expr`. Grounded on
// visit_mut_export_default_expr.
func transformDefaultExpr(ctx *rtcall.Context, n *js_ast.SExportDefaultExpr, rootScope *scope.Scope, log logger.Log, source *logger.Source) {
	arrow, ok := n.Value.Data.(*js_ast.EArrow)
	if !ok {
		return
	}
	s := scope.ChildOf(rootScope)
	params, model := bindViewParams(s, arrow.Params)
	if _, err := tr.TrBlockOrExpr(ctx, &arrow.Block, arrow.Expr, s); err != nil {
		addTrError(log, source, err)
	}
	n.Value = viewExpr(ctx, params, model, arrow.Block, arrow.Expr)
}

// transformDefaultDecl handles `export default function Name(props) { ... }`.
// Grounded on visit_mut_export_default_decl.
func transformDefaultDecl(ctx *rtcall.Context, n *js_ast.SExportDefaultDecl, rootScope *scope.Scope, log logger.Log, source *logger.Source) {
	fn, ok := n.Decl.Data.(*js_ast.DFunction)
	if !ok {
		return
	}
	s := scope.ChildOf(rootScope)
	params, model := bindViewParams(s, fn.Fn.Params)
	if _, err := tr.TrBlock(ctx, &fn.Fn.Body, s); err != nil {
		addTrError(log, source, err)
	}
	body := fn.Fn.Body
	n.Decl = js_ast.Decl{Data: &js_ast.DFunction{Fn: js_ast.Fn{
		Name:   fn.Fn.Name,
		Params: params,
		Body:   viewBody(ctx, model, &body, nil),
	}}}
}

// bindViewParams inserts every identifier bound by a view's parameter list
// as Live (a view's whole props argument is the reactive root) and returns
// the param bindings unchanged alongside the flat list of bound names, the
// "model" the runtime's Param() initializer is built from. Grounded on
// lib.rs's walk_every_pat_idents loop over arrow.params/func.params.
func bindViewParams(s *scope.Scope, params []js_ast.Binding) ([]js_ast.Binding, []string) {
	var model []string
	for _, p := range params {
		scope.WalkBindingIdents(p, func(name string) {
			s.InsertItem(name, scope.Live)
			model = append(model, name)
		})
	}
	return params, model
}

// viewExpr builds the arrow-function replacement for a default-exported
// arrow: `(…) => lib.view(initObj, (model, unmountSig) => body)`.
func viewExpr(ctx *rtcall.Context, params []js_ast.Binding, model []string, block *js_ast.SBlock, expr *js_ast.Expr) js_ast.Expr {
	call := ctx.View(model, block, expr)
	return js_ast.Expr{Data: &js_ast.EArrow{
		Params: params,
		Expr:   &call,
	}}
}

// viewBody builds the function-declaration replacement body: a single
// `return lib.view(initObj, (model, unmountSig) => body);` statement.
func viewBody(ctx *rtcall.Context, model []string, block *js_ast.SBlock, expr *js_ast.Expr) js_ast.SBlock {
	call := ctx.View(model, block, expr)
	return js_ast.SBlock{Stmts: []js_ast.Stmt{
		{Data: &js_ast.SReturn{ValueOrNil: &call}},
	}}
}

func addTrError(log logger.Log, source *logger.Source, err error) {
	loc := js_ast.Loc{}
	if ine, ok := err.(*tr.InvalidNodeError); ok {
		loc = ine.Loc
	}
	log.AddError(source, logger.Loc{Start: int32(loc.Start)}, err.Error())
}
