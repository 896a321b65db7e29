package tr

import (
	"fmt"

	"github.com/viewmill/viewmill/internal/js_ast"
)

// InvalidNodeError is raised when the traverser reaches a node the parser
// itself marked invalid (a recovered parse error embedded in the tree).
// Grounded on original_source/transformer/src/errors.rs's SpanError, whose
// one call site is exactly this case (tr.rs's `Expr::Invalid` arm).
type InvalidNodeError struct {
	Loc js_ast.Loc
	Msg string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("invalid node at %d: %s", e.Loc.Start, e.Msg)
}

func invalidNode(loc js_ast.Loc) error {
	return &InvalidNodeError{Loc: loc, Msg: "invalid node"}
}
