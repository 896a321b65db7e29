package scope

import "github.com/viewmill/viewmill/internal/js_ast"

// SeedFromModule builds the root scope for a parsed module: every name a
// top-level import, declaration, or export introduces is inserted as a
// Default binding. Liveness is established separately, once the
// component's own prop/state bindings are identified (internal/driver
// marks a view's params as Live after this seed scope exists). Grounded on scope.rs's
// `impl From<&Module> for Scope`.
func SeedFromModule(module *js_ast.Module) *Scope {
	s := New()
	for _, stmt := range module.Stmts {
		seedStmt(s, stmt)
	}
	return s
}

func seedStmt(s *Scope, stmt js_ast.Stmt) {
	switch d := stmt.Data.(type) {
	case *js_ast.SImport:
		if d.DefaultName != nil {
			s.Insert(*d.DefaultName)
		}
		if d.NamespaceName != nil {
			s.Insert(*d.NamespaceName)
		}
		for _, spec := range d.Named {
			s.Insert(spec.Local)
		}
	case *js_ast.SExportNamedDecl:
		if d.Decl != nil {
			seedDecl(s, *d.Decl)
		}
	case *js_ast.SExportDefaultDecl:
		seedDecl(s, d.Decl)
	case *js_ast.SExportDefaultExpr:
		seedExpr(s, d.Value)
	case *js_ast.SDecl:
		seedDecl(s, d.Decl)
	case *js_ast.SExpr:
		seedExpr(s, d.Value)
	}
}

func seedDecl(s *Scope, decl js_ast.Decl) {
	switch d := decl.Data.(type) {
	case *js_ast.DClass:
		if d.Class.Name != nil {
			s.Insert(*d.Class.Name)
		}
	case *js_ast.DFunction:
		if d.Fn.Name != nil {
			s.Insert(*d.Fn.Name)
		}
	case *js_ast.DVar:
		for _, declarator := range d.Declarators {
			s.InsertPatItem(declarator.Binding, Default)
		}
	case *js_ast.DTSInterface:
		s.Insert(d.Name)
	case *js_ast.DTSTypeAlias:
		s.Insert(d.Name)
	case *js_ast.DTSEnum:
		s.Insert(d.Name)
	case *js_ast.DTSModule:
		s.Insert(d.Name)
	case *js_ast.DUsing:
		for _, declarator := range d.Declarators {
			s.InsertPatItem(declarator.Binding, Default)
		}
	}
}

func seedExpr(s *Scope, e js_ast.Expr) {
	switch d := e.Data.(type) {
	case *js_ast.EFunction:
		if d.Fn.Name != nil {
			s.Insert(*d.Fn.Name)
		}
	case *js_ast.EClassExpr:
		if d.Class.Name != nil {
			s.Insert(*d.Class.Name)
		}
	}
}
