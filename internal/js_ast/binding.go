package js_ast

// Binding wraps every destructuring-pattern node kind, mirroring Expr's
// tagged-variant shape. Used for function params, variable declarators, and
// catch-clause parameters.
type Binding struct {
	Data B
	Loc  Loc
}

type B interface{ isBinding() }

func (*BIdentifier) isBinding() {}
func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}
func (*BAssign) isBinding()     {}
func (*BInvalid) isBinding()    {}

type BIdentifier struct{ Name string }

type ArrayBindingElem struct {
	// nil Binding.Data is an elision ("[, b]").
	Binding    Binding
	DefaultVal *Expr
	IsSpread   bool
}

type BArray struct {
	Items []ArrayBindingElem
}

type ObjectBindingPropKind uint8

const (
	OBPKeyValue ObjectBindingPropKind = iota
	OBPShorthand
	OBPRest
)

type ObjectBindingProp struct {
	Kind       ObjectBindingPropKind
	Key        PropertyName
	Value      Binding // unused for OBPRest; use Key.Ident as the rest name there
	DefaultVal *Expr
}

type BObject struct {
	Properties []ObjectBindingProp
}

// BAssign represents a pattern with a default value ("a = 1" inside a
// destructuring target); BArray/BObject elements carry their own
// DefaultVal field directly and don't need this wrapper, but a bare
// parameter default ("function f(a = 1)") does.
type BAssign struct {
	Left    Binding
	Default Expr
}

// BInvalid marks a binding position the traverser could not make sense of;
// it is threaded through rather than panicking, consistent with
// internal/tr's InvalidNodeError diagnostic.
type BInvalid struct{}
