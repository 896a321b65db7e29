// Package astprovider defines the seam between this repository and
// whatever actually parses JS/TS/JSX source text into this repository's
// own internal/js_ast grammar. Parsing is deliberately not implemented
// in-tree: original_source/transformer/src/lib.rs itself doesn't parse
// either, it calls out to the external swc_ecma_parser crate
// (parser::parse_file_as_module) and only owns the transform that runs
// after parsing. This repo draws the same boundary one level up, as a Go
// interface a caller supplies, rather than vendoring or reimplementing a
// full ES/TS/JSX parser.
package astprovider

import "github.com/viewmill/viewmill/internal/js_ast"

// Syntax selects which grammar a source file is parsed as. Grounded on
// original_source/transformer/src/syntax.rs's Syntax enum.
type Syntax uint8

const (
	Js Syntax = iota
	Ts
)

// Ext returns the canonical output extension for syntax, matching
// Syntax::ext in syntax.rs (both JS and JSX sources print as plain .js;
// both TS and TSX sources print as plain .ts — JSX is erased during the
// transform, and TS types are passed through as opaque text, never
// re-annotated with their own decorated extension).
func (s Syntax) Ext() string {
	if s == Ts {
		return "ts"
	}
	return "js"
}

// DiagnosticKind classifies a parse-time problem reported by a Parser.
// Grounded on spec.md §7's error taxonomy; ParseError is the only kind a
// Parser itself can raise (InvalidNode/OptionError are raised by
// internal/tr and pkg/api respectively; the printer raises no errors).
type DiagnosticKind uint8

const (
	ParseError DiagnosticKind = iota
)

// Diagnostic is a single parser-reported problem. Unlike a hard parse
// failure, a Diagnostic doesn't prevent a Module from being returned —
// it mirrors original_source/transformer/src/lib.rs's recovered_errors,
// which parse_file_as_module collects alongside a best-effort AST rather
// than aborting on the first syntax error.
type Diagnostic struct {
	Kind DiagnosticKind
	Loc  js_ast.Loc
	Msg  string
}

// Parser turns JS/TS/JSX source text into this repository's own AST.
// A caller of pkg/api.Transform supplies a concrete implementation (for
// example one backed by an existing Go JS/TS parser); omitting one is an
// OptionError, not a panic — see pkg/api's ErrNoParser.
type Parser interface {
	Parse(source string, syntax Syntax) (*js_ast.Module, []Diagnostic, error)
}
