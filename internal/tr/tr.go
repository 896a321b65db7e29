// Package tr is the dependency traverser: it walks a parsed module in
// place, rewriting every read of a live identifier into a runtime
// `.getValue()` call and threading the set of live names each
// expression/statement depends on back up to its caller so the enclosing
// construct (a JSX attribute, a variable initializer, a conditional) can
// decide whether it needs to become reactive itself.
//
// JSX lowering (jsx.go) lives in this same package rather than its own,
// because it and the expression/statement traverser below are mutually
// recursive in exactly the way original_source/transformer/src/tr.rs and
// jsx.rs are mutually recursive siblings within one Rust crate — Go has
// no equivalent of same-crate cross-module recursion, so the only way to
// keep that structure intact is one package, many files.
package tr

import (
	"github.com/viewmill/viewmill/internal/deps"
	"github.com/viewmill/viewmill/internal/js_ast"
	"github.com/viewmill/viewmill/internal/rtcall"
	"github.com/viewmill/viewmill/internal/scope"
)

// valueOf builds `name.getValue()`, the read-side rewrite applied to every
// live identifier reference. Grounded on live.rs's value_of.
func valueOf(name string) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.ECall{
		Callee: js_ast.ExprCallee(js_ast.Expr{Data: &js_ast.EMember{
			Obj:  js_ast.Ident(name),
			Prop: js_ast.MemberProp{Ident: "getValue"},
		}}),
	}}
}

// varInitializer decides how a variable declarator whose initializer
// turned out to depend on live state should be rewritten: a plain
// identifier pattern becomes a live cell directly; an array/object
// destructuring pattern is flattened and wrapped with a DestructArg so
// the runtime can re-derive each leaf binding on every update. Returns
// nil if the pattern can't be turned into a live declarator (e.g. it was
// already malformed). Grounded on live.rs's var_initializer.
func varInitializer(ctx *rtcall.Context, pat *js_ast.Binding, expr js_ast.Expr, depNames []string) *js_ast.Expr {
	switch d := pat.Data.(type) {
	case *js_ast.BIdentifier:
		e := ctx.Live(expr, depNames, nil)
		return &e
	case *js_ast.BArray:
		da := deps.FromArrayPattern(d)
		*pat = da.ToDeclPat()
		e := ctx.Live(expr, depNames, &da)
		return &e
	case *js_ast.BObject:
		da := deps.FromObjectPattern(d)
		*pat = da.ToDeclPat()
		e := ctx.Live(expr, depNames, &da)
		return &e
	default:
		return nil
	}
}

func trVarDecl(ctx *rtcall.Context, decl *js_ast.DVar, s *scope.Scope) (deps.Value, error) {
	for i := range decl.Declarators {
		d := &decl.Declarators[i]
		if d.ValueOrNil == nil {
			s.InsertPatItem(d.Binding, scope.Default)
			continue
		}
		result, err := TrExpr(ctx, d.ValueOrNil, s)
		if err != nil {
			return deps.None(), err
		}
		if result.IsNone() {
			s.InsertPatItem(d.Binding, scope.Default)
			continue
		}
		if newInit := varInitializer(ctx, &d.Binding, *d.ValueOrNil, result.Names()); newInit != nil {
			d.ValueOrNil = newInit
			s.InsertPatItem(d.Binding, scope.Live)
		} else {
			s.InsertPatItem(d.Binding, scope.Default)
		}
	}
	return deps.None(), nil
}

func trDecl(ctx *rtcall.Context, decl *js_ast.Decl, s *scope.Scope) (deps.Value, error) {
	switch d := decl.Data.(type) {
	case *js_ast.DClass:
		return trClass(ctx, &d.Class, s)
	case *js_ast.DFunction:
		return trFunction(ctx, &d.Fn, s)
	case *js_ast.DVar:
		if _, err := trVarDecl(ctx, d, s); err != nil {
			return deps.None(), err
		}
		return deps.None(), nil
	default:
		return deps.None(), nil
	}
}

// TrBlockOrExpr traverses an arrow function body, which is either a block
// or a bare expression. Grounded on tr_block_or_expr.
func TrBlockOrExpr(ctx *rtcall.Context, block **js_ast.SBlock, expr *js_ast.Expr, s *scope.Scope) (deps.Value, error) {
	if *block != nil {
		return TrBlock(ctx, *block, s)
	}
	child := scope.ChildOf(s)
	return TrExpr(ctx, expr, child)
}

// TrBlock traverses a braced statement block in a fresh child scope,
// pre-seeding every declaration the block introduces (so forward
// references within the block resolve), matching tr_block.
func TrBlock(ctx *rtcall.Context, block *js_ast.SBlock, s *scope.Scope) (deps.Value, error) {
	result := deps.None()
	child := scope.ChildOf(s)
	for _, stmt := range block.Stmts {
		seedStmtDecl(child, stmt)
	}
	for i := range block.Stmts {
		v, err := trStmt(ctx, &block.Stmts[i], child)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
	}
	return result, nil
}

// seedStmtDecl pre-registers the name(s) a single top-level-of-block
// declaration introduces, so sibling statements in the same block can
// reference a binding declared later in source order (function hoisting,
// and so mutually-referencing declarators within the block resolve
// without needing a second traversal pass).
func seedStmtDecl(s *scope.Scope, stmt js_ast.Stmt) {
	sd, ok := stmt.Data.(*js_ast.SDecl)
	if !ok {
		return
	}
	switch decl := sd.Decl.Data.(type) {
	case *js_ast.DFunction:
		if decl.Fn.Name != nil {
			s.Insert(*decl.Fn.Name)
		}
	case *js_ast.DClass:
		if decl.Class.Name != nil {
			s.Insert(*decl.Class.Name)
		}
	case *js_ast.DVar:
		for i := range decl.Declarators {
			s.InsertPatItem(decl.Declarators[i].Binding, scope.Default)
		}
	}
}

func trStmt(ctx *rtcall.Context, stmt *js_ast.Stmt, s *scope.Scope) (deps.Value, error) {
	switch d := stmt.Data.(type) {
	case *js_ast.SBlock:
		return TrBlock(ctx, d, s)
	case *js_ast.SEmpty, *js_ast.SDebugger, *js_ast.SBreak, *js_ast.SContinue:
		return deps.None(), nil
	case *js_ast.SWith:
		result, err := TrExpr(ctx, &d.Obj, s)
		if err != nil {
			return deps.None(), err
		}
		v, err := trStmt(ctx, &d.Body, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		return result, nil
	case *js_ast.SReturn:
		if d.ValueOrNil == nil {
			return deps.None(), nil
		}
		return TrExpr(ctx, d.ValueOrNil, s)
	case *js_ast.SLabeled:
		return trStmt(ctx, &d.Stmt, s)
	case *js_ast.SIf:
		result := deps.None()
		v, err := TrExpr(ctx, &d.Test, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		v, err = trStmt(ctx, &d.Yes, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		if d.NoOrNil != nil {
			v, err = trStmt(ctx, d.NoOrNil, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil
	case *js_ast.SSwitch:
		result := deps.None()
		v, err := TrExpr(ctx, &d.Test, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		for i := range d.Cases {
			c := &d.Cases[i]
			if c.TestOrNil != nil {
				v, err = TrExpr(ctx, c.TestOrNil, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
			child := scope.ChildOf(s)
			for j := range c.Body {
				v, err = trStmt(ctx, &c.Body[j], child)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
		return result, nil
	case *js_ast.SThrow:
		return TrExpr(ctx, &d.Value, s)
	case *js_ast.STry:
		result := deps.None()
		v, err := TrBlock(ctx, &d.Body, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		if d.Catch != nil {
			child := scope.ChildOf(s)
			if d.Catch.BindingOrNil != nil {
				child.InsertPatItem(*d.Catch.BindingOrNil, scope.Default)
			}
			v, err = TrBlock(ctx, &d.Catch.Body, child)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		if d.FinallyOrNil != nil {
			v, err = TrBlock(ctx, d.FinallyOrNil, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil
	case *js_ast.SWhile:
		return trTestAndBody(ctx, &d.Test, &d.Body, s)
	case *js_ast.SDoWhile:
		return trTestAndBody(ctx, &d.Test, &d.Body, s)
	case *js_ast.SFor:
		result := deps.None()
		child := scope.ChildOf(s)
		if d.InitOrNil != nil {
			if d.InitOrNil.Decl != nil {
				if _, err := trVarDecl(ctx, d.InitOrNil.Decl.Decl.Data.(*js_ast.DVar), child); err != nil {
					return deps.None(), err
				}
			} else if d.InitOrNil.Expr != nil {
				v, err := TrExpr(ctx, d.InitOrNil.Expr, child)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
		if d.TestOrNil != nil {
			v, err := TrExpr(ctx, d.TestOrNil, child)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		if d.UpdateOrNil != nil {
			v, err := TrExpr(ctx, d.UpdateOrNil, child)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		v, err := trStmt(ctx, &d.Body, child)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		return result, nil
	case *js_ast.SForIn:
		return trForLike(ctx, &d.Left, &d.Right, &d.Body, s)
	case *js_ast.SForOf:
		return trForLike(ctx, &d.Left, &d.Right, &d.Body, s)
	case *js_ast.SDecl:
		return trDecl(ctx, &d.Decl, s)
	case *js_ast.SExpr:
		return TrExpr(ctx, &d.Value, s)
	case *js_ast.SExportNamedDecl:
		if d.Decl == nil {
			return deps.None(), nil
		}
		return trDecl(ctx, d.Decl, s)
	case *js_ast.SExportDefaultDecl:
		return trDecl(ctx, &d.Decl, s)
	case *js_ast.SExportDefaultExpr:
		return TrExpr(ctx, &d.Value, s)
	default:
		// SImport: nothing to traverse, its bindings are never live.
		return deps.None(), nil
	}
}

func trTestAndBody(ctx *rtcall.Context, test *js_ast.Expr, body *js_ast.Stmt, s *scope.Scope) (deps.Value, error) {
	result := deps.None()
	v, err := TrExpr(ctx, test, s)
	if err != nil {
		return deps.None(), err
	}
	result.Extend(v)
	v, err = trStmt(ctx, body, s)
	if err != nil {
		return deps.None(), err
	}
	result.Extend(v)
	return result, nil
}

func trForLike(ctx *rtcall.Context, left *js_ast.ForBinding, right *js_ast.Expr, body *js_ast.Stmt, s *scope.Scope) (deps.Value, error) {
	result := deps.None()
	child := scope.ChildOf(s)
	v, err := TrExpr(ctx, right, child)
	if err != nil {
		return deps.None(), err
	}
	result.Extend(v)
	if left.Decl != nil {
		for i := range left.Decl.Decl.Data.(*js_ast.DVar).Declarators {
			child.InsertPatItem(left.Decl.Decl.Data.(*js_ast.DVar).Declarators[i].Binding, scope.Default)
		}
	} else if left.Target != nil {
		if left.Target.Pat != nil {
			v, err = trPat(ctx, left.Target.Pat, child)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		} else if left.Target.Expr != nil {
			v, err = TrExpr(ctx, left.Target.Expr, child)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
	}
	v, err = trStmt(ctx, body, child)
	if err != nil {
		return deps.None(), err
	}
	result.Extend(v)
	return result, nil
}

func trMemberExpr(ctx *rtcall.Context, obj *js_ast.Expr, prop *js_ast.MemberProp, s *scope.Scope) (deps.Value, error) {
	result, err := TrExpr(ctx, obj, s)
	if err != nil {
		return deps.None(), err
	}
	if prop.Computed.Data != nil {
		v, err := TrExpr(ctx, &prop.Computed, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
	}
	return result, nil
}

// TrExpr rewrites expr in place and returns the set of live identifier
// names it depends on. Grounded on tr.rs's tr_expr.
func TrExpr(ctx *rtcall.Context, expr *js_ast.Expr, s *scope.Scope) (deps.Value, error) {
	switch d := expr.Data.(type) {
	case *js_ast.EArray:
		result := deps.None()
		for i := range d.Items {
			if d.Items[i].Data == nil {
				continue
			}
			v, err := TrExpr(ctx, &d.Items[i], s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil

	case *js_ast.EObject:
		result := deps.None()
		for i := range d.Properties {
			prop := &d.Properties[i]
			if prop.Key.IsComputed() {
				v, err := TrExpr(ctx, &prop.Key.Computed, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
			switch prop.Kind {
			case js_ast.PropertySpread:
				v, err := TrExpr(ctx, &prop.Value, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			case js_ast.PropertyShorthand:
				if s.IsLive(prop.Key.Ident) {
					value := js_ast.Ident(prop.Key.Ident)
					v, err := TrExpr(ctx, &value, s)
					if err != nil {
						return deps.None(), err
					}
					result.Extend(v)
					prop.Kind = js_ast.PropertyNormal
					prop.Value = value
				}
			case js_ast.PropertyGetter:
				if prop.Fn != nil {
					v, err := TrBlock(ctx, &prop.Fn.Body, s)
					if err != nil {
						return deps.None(), err
					}
					result.Extend(v)
				}
			case js_ast.PropertySetter:
				child := scope.ChildOf(s)
				for j := range prop.Fn.Params {
					child.InsertPatItem(prop.Fn.Params[j], scope.Default)
					v, err := trPat(ctx, &prop.Fn.Params[j], child)
					if err != nil {
						return deps.None(), err
					}
					result.Extend(v)
				}
				v, err := TrBlock(ctx, &prop.Fn.Body, child)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			case js_ast.PropertyMethod:
				v, err := trFunction(ctx, prop.Fn, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			default:
				v, err := TrExpr(ctx, &prop.Value, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
		return result, nil

	case *js_ast.EFunction:
		return trFunction(ctx, d.Fn, s)

	case *js_ast.EUnary:
		return TrExpr(ctx, &d.Value, s)

	case *js_ast.EBinary:
		result := deps.None()
		v, err := TrExpr(ctx, &d.Left, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		v, err = TrExpr(ctx, &d.Right, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		return result, nil

	case *js_ast.EAssign:
		result := deps.None()
		if d.Left.Pat != nil {
			v, err := trPat(ctx, d.Left.Pat, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		} else if d.Left.Expr != nil {
			// A bare identifier target ("x = value") is a write, not a
			// read: it must not be rewritten into a `.getValue()` call
			// the way every other identifier reference is. Anything
			// more than a bare identifier (member access, computed
			// property) does still read live state for its object/key.
			if _, isIdent := d.Left.Expr.Data.(*js_ast.EIdentifier); !isIdent {
				v, err := TrExpr(ctx, d.Left.Expr, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
		v, err := TrExpr(ctx, &d.Right, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		return result, nil

	case *js_ast.EMember:
		return trMemberExpr(ctx, &d.Obj, &d.Prop, s)

	case *js_ast.ESuperMember:
		if d.Prop.Computed.Data != nil {
			return TrExpr(ctx, &d.Prop.Computed, s)
		}
		return deps.None(), nil

	case *js_ast.ECond:
		result := deps.None()
		for _, e := range []*js_ast.Expr{&d.Test, &d.Yes, &d.No} {
			v, err := TrExpr(ctx, e, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil

	case *js_ast.ECall:
		result := deps.None()
		if d.Callee.Expr != nil {
			v, err := TrExpr(ctx, d.Callee.Expr, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		for i := range d.Args {
			v, err := TrExpr(ctx, &d.Args[i], s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil

	case *js_ast.ENew:
		result := deps.None()
		v, err := TrExpr(ctx, &d.Callee, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		for i := range d.Args {
			v, err := TrExpr(ctx, &d.Args[i], s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil

	case *js_ast.ESeq:
		result := deps.None()
		for i := range d.Exprs {
			v, err := TrExpr(ctx, &d.Exprs[i], s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil

	case *js_ast.EIdentifier:
		if s.IsLive(d.Name) {
			result := deps.Deps(d.Name)
			*expr = valueOf(d.Name)
			return result, nil
		}
		return deps.None(), nil

	case *js_ast.ETemplate:
		result := deps.None()
		if d.Tag != nil {
			v, err := TrExpr(ctx, d.Tag, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		for i := range d.Parts {
			v, err := TrExpr(ctx, &d.Parts[i].Expr, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		return result, nil

	case *js_ast.EArrow:
		result := deps.None()
		child := scope.ChildOf(s)
		for i := range d.Params {
			child.InsertPatItem(d.Params[i], scope.Default)
			v, err := trPat(ctx, &d.Params[i], child)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
		}
		v, err := TrBlockOrExpr(ctx, &d.Block, d.Expr, child)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		return result, nil

	case *js_ast.EClassExpr:
		return trClass(ctx, d.Class, s)

	case *js_ast.EYield:
		if d.ArgOrNil == nil {
			return deps.None(), nil
		}
		return TrExpr(ctx, d.ArgOrNil, s)

	case *js_ast.EAwait:
		return TrExpr(ctx, &d.Value, s)

	case *js_ast.EParen:
		return TrExpr(ctx, &d.Value, s)

	case *js_ast.ETSTypeAssertion:
		return TrExpr(ctx, &d.Value, s)
	case *js_ast.ETSConstAssertion:
		return TrExpr(ctx, &d.Value, s)
	case *js_ast.ETSNonNull:
		return TrExpr(ctx, &d.Value, s)
	case *js_ast.ETSAs:
		return TrExpr(ctx, &d.Value, s)
	case *js_ast.ETSSatisfies:
		return TrExpr(ctx, &d.Value, s)

	case *js_ast.EJSXElement:
		lowered, err := LowerRootElement(ctx, d, s)
		if err != nil {
			return deps.None(), err
		}
		*expr = lowered
		return deps.None(), nil

	case *js_ast.EJSXFragment:
		lowered, err := LowerRootFragment(ctx, d, s)
		if err != nil {
			return deps.None(), err
		}
		*expr = lowered
		return deps.None(), nil

	case *js_ast.EInvalid:
		return deps.None(), invalidNode(expr.Loc)

	default:
		// EThis, ESuper, literals, EPrivateName, EMetaProperty,
		// ETSInstantiation: none of these reference live state.
		return deps.None(), nil
	}
}

// trPat traverses a binding pattern's nested default-value expressions and
// computed property keys (the only places a pattern can read live state —
// the bound names themselves are write targets, not reads, so they never
// contribute a dependency or get rewritten here). Grounded on tr.rs's
// tr_pat.
func trPat(ctx *rtcall.Context, pat *js_ast.Binding, s *scope.Scope) (deps.Value, error) {
	switch d := pat.Data.(type) {
	case *js_ast.BIdentifier:
		return deps.None(), nil
	case *js_ast.BArray:
		result := deps.None()
		for i := range d.Items {
			elem := &d.Items[i]
			if elem.Binding.Data == nil {
				continue
			}
			v, err := trPat(ctx, &elem.Binding, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
			if elem.DefaultVal != nil {
				v, err = TrExpr(ctx, elem.DefaultVal, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
		return result, nil
	case *js_ast.BObject:
		result := deps.None()
		for i := range d.Properties {
			prop := &d.Properties[i]
			if prop.Key.IsComputed() {
				v, err := TrExpr(ctx, &prop.Key.Computed, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
			if prop.Kind == js_ast.OBPRest {
				continue
			}
			v, err := trPat(ctx, &prop.Value, s)
			if err != nil {
				return deps.None(), err
			}
			result.Extend(v)
			if prop.DefaultVal != nil {
				v, err = TrExpr(ctx, prop.DefaultVal, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
		return result, nil
	case *js_ast.BAssign:
		result, err := trPat(ctx, &d.Left, s)
		if err != nil {
			return deps.None(), err
		}
		v, err := TrExpr(ctx, &d.Default, s)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
		return result, nil
	default:
		return deps.None(), nil
	}
}

func trFunction(ctx *rtcall.Context, fn *js_ast.Fn, s *scope.Scope) (deps.Value, error) {
	result := deps.None()
	child := scope.ChildOf(s)
	for i := range fn.Params {
		child.InsertPatItem(fn.Params[i], scope.Default)
		v, err := trPat(ctx, &fn.Params[i], child)
		if err != nil {
			return deps.None(), err
		}
		result.Extend(v)
	}
	v, err := TrBlock(ctx, &fn.Body, child)
	if err != nil {
		return deps.None(), err
	}
	result.Extend(v)
	return result, nil
}

func trClass(ctx *rtcall.Context, class *js_ast.Class, s *scope.Scope) (deps.Value, error) {
	result := deps.None()
	for i := range class.Body {
		member := &class.Body[i]
		switch member.Kind {
		case js_ast.MConstructor:
			child := scope.ChildOf(s)
			for j := range member.CtorParams {
				child.InsertPatItem(member.CtorParams[j].Binding, scope.Default)
				v, err := trPat(ctx, &member.CtorParams[j].Binding, child)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
			if member.Fn != nil {
				v, err := TrBlock(ctx, &member.Fn.Body, child)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		case js_ast.MMethod, js_ast.MPrivateMethod:
			if member.Fn != nil {
				v, err := trFunction(ctx, member.Fn, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		case js_ast.MField, js_ast.MPrivateField:
			if member.ValueOrNil != nil {
				v, err := TrExpr(ctx, member.ValueOrNil, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		case js_ast.MStaticBlock:
			if member.Block != nil {
				v, err := TrBlock(ctx, member.Block, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		case js_ast.MAutoAccessor:
			if member.ValueOrNil != nil {
				v, err := TrExpr(ctx, member.ValueOrNil, s)
				if err != nil {
					return deps.None(), err
				}
				result.Extend(v)
			}
		}
	}
	return result, nil
}
