// Package js_ast defines the expression/statement/pattern grammar the
// dependency traverser and JSX lowering engine (both in internal/tr)
// operate over. It plays the same role in this repo that
// github.com/evanw/esbuild/internal/js_ast plays in the teacher: a tagged,
// mutable tree shared by every pass. Unlike the teacher's js_ast, identifiers
// here carry their name directly (no Ref/SymbolMap indirection) — see
// DESIGN.md, "Open Question: AST identifier representation".
package js_ast

// Loc is a byte offset into the original source text. NoLoc (-1) marks a
// position with no source counterpart; nodes the transform synthesizes are
// built with the zero Loc.
type Loc struct {
	Start int32
}

// Range is a span of source text, used for diagnostics (internal/logger).
type Range struct {
	Loc Loc
	Len int32
}

var NoLoc = Loc{Start: -1}
