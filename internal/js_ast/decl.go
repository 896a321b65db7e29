package js_ast

// Decl wraps every declaration node kind: the things that can appear as a
// SDecl's payload, a for-init, or an export's payload.
type Decl struct {
	Data D
	Loc  Loc
}

type D interface{ isDecl() }

func (*DClass) isDecl()      {}
func (*DFunction) isDecl()   {}
func (*DVar) isDecl()        {}
func (*DTSInterface) isDecl() {}
func (*DTSTypeAlias) isDecl() {}
func (*DTSEnum) isDecl()     {}
func (*DTSModule) isDecl()   {}
func (*DUsing) isDecl()      {}

type DClass struct{ Class Class }

type DFunction struct{ Fn Fn }

type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

type Declarator struct {
	Binding    Binding
	ValueOrNil *Expr
}

type DVar struct {
	Kind        VarKind
	Declarators []Declarator
}

// DTSInterface, DTSTypeAlias, DTSEnum, DTSModule are kept as opaque,
// unexpanded type-level declarations: the traverser passes them through
// untouched (they contribute no runtime dependencies and the printer emits
// a placeholder declaration carrying only the name), matching how original_source/transformer
// leaves TS-only declarations alone when tr_stmt walks a module body.
type DTSInterface struct{ Name string }
type DTSTypeAlias struct{ Name string }
type DTSEnum struct{ Name string }
type DTSModule struct{ Name string }

type DUsing struct {
	IsAwait     bool
	Declarators []Declarator
}

// Module is a full parsed source file: a sequence of top-level statements.
// It keeps no source text; TS type-only decls and comments survive only as
// far as the grammar above models them.
type Module struct {
	Stmts []Stmt
}
