package js_ast

// Expr wraps every expression node kind behind a tagged interface, mirroring
// esbuild's Expr{Data E, Loc}. Data is always one of the concrete E* types
// below.
type Expr struct {
	Data E
	Loc  Loc
}

// E is implemented by every concrete expression node. It exists only to
// encode a closed variant type in Go's type system (esbuild does the same
// with its own E interface).
type E interface{ isExpr() }

func (*EArray) isExpr()          {}
func (*EObject) isExpr()         {}
func (*ESpread) isExpr()         {}
func (*EUnary) isExpr()          {}
func (*EBinary) isExpr()         {}
func (*EAssign) isExpr()         {}
func (*ECond) isExpr()           {}
func (*ESeq) isExpr()            {}
func (*ECall) isExpr()           {}
func (*ENew) isExpr()            {}
func (*EMember) isExpr()         {}
func (*ESuperMember) isExpr()    {}
func (*EIdentifier) isExpr()     {}
func (*EPrivateName) isExpr()    {}
func (*ETemplate) isExpr()       {}
func (*EArrow) isExpr()          {}
func (*EFunction) isExpr()       {}
func (*EClassExpr) isExpr()      {}
func (*EYield) isExpr()          {}
func (*EAwait) isExpr()          {}
func (*EParen) isExpr()          {}
func (*ETSTypeAssertion) isExpr() {}
func (*ETSConstAssertion) isExpr() {}
func (*ETSNonNull) isExpr()      {}
func (*ETSAs) isExpr()           {}
func (*ETSSatisfies) isExpr()    {}
func (*ETSInstantiation) isExpr() {}
func (*EThis) isExpr()           {}
func (*ESuper) isExpr()          {}
func (*EString) isExpr()         {}
func (*ENumber) isExpr()         {}
func (*EBoolean) isExpr()        {}
func (*ENull) isExpr()           {}
func (*EUndefined) isExpr()      {}
func (*EBigInt) isExpr()         {}
func (*ERegExp) isExpr()         {}
func (*EMetaProperty) isExpr()   {}
func (*EJSXElement) isExpr()     {}
func (*EJSXFragment) isExpr()    {}
func (*EInvalid) isExpr()        {}

type EArray struct {
	// A nil entry is an elision ("[1, , 3]").
	Items []Expr
}

type PropertyKind uint8

const (
	PropertyNormal PropertyKind = iota
	PropertyShorthand
	PropertySpread
	PropertyGetter
	PropertySetter
	PropertyMethod
)

// PropertyName is the key of an object property, class member, or the name
// slot of a JSX attribute.
type PropertyName struct {
	Ident    string // set when Computed == nil and this is a plain/string key
	Computed Expr   // non-nil Data for "[expr]:" computed keys
}

func (p PropertyName) IsComputed() bool { return p.Computed.Data != nil }

type Property struct {
	Kind  PropertyKind
	Key   PropertyName
	Value Expr // for PropertySpread, the spread operand (see NewSpreadProperty)
	Fn    *Fn  // set for PropertyGetter/PropertySetter/PropertyMethod
}

// NewSpreadProperty builds a Property representing "...expr" inside an
// object literal.
func NewSpreadProperty(value Expr) Property {
	return Property{Kind: PropertySpread, Value: value}
}

type EObject struct {
	Properties []Property
}

// ESpread wraps "...expr" inside an array literal or a call/new argument
// list; EArray.Items and ECall/ENew's Args may contain it directly.
type ESpread struct{ Value Expr }

type EUnary struct {
	Op    OpCode
	Value Expr
}

type EBinary struct {
	Op    OpCode
	Left  Expr
	Right Expr
}

// AssignTarget is either a pattern (valid destructuring target) or a plain
// expression (e.g. "a.b = c" where "a.b" was never a declaration pattern),
// matching swc's PatOrExpr — see DESIGN.md's identifier-representation note.
type AssignTarget struct {
	Pat  *Binding
	Expr *Expr
}

func ExprTarget(e Expr) AssignTarget  { return AssignTarget{Expr: &e} }
func PatTarget(b Binding) AssignTarget { return AssignTarget{Pat: &b} }

type EAssign struct {
	Op    OpCode
	Left  AssignTarget
	Right Expr
}

type ECond struct {
	Test Expr
	Yes  Expr
	No   Expr
}

type ESeq struct{ Exprs []Expr }

type Callee struct {
	Expr      *Expr
	IsSuper   bool
	IsImport  bool
}

func ExprCallee(e Expr) Callee { return Callee{Expr: &e} }

type ECall struct {
	Callee   Callee
	Args     []Expr
	Optional bool // "a?.()"
}

type ENew struct {
	Callee Expr
	// nil means "new Foo" with no parens at all; non-nil-but-empty means "new Foo()".
	Args []Expr
}

type MemberProp struct {
	Ident       string
	PrivateName string // non-empty for "#name"
	Computed    Expr   // non-nil Data for "[expr]"
}

type EMember struct {
	Obj      Expr
	Prop     MemberProp
	Optional bool // "a?.b" / "a?.[b]"
}

type ESuperMember struct {
	Prop MemberProp
}

type EIdentifier struct{ Name string }

type EPrivateName struct{ Name string }

type TemplatePart struct {
	Cooked string
	Expr   Expr
}

type ETemplate struct {
	Tag    *Expr // non-nil for tagged templates
	Head   string
	Parts  []TemplatePart
}

type EArrow struct {
	Params     []Binding
	Block      *SBlock // set when the body is "{ ... }"
	Expr       *Expr   // set when the body is a bare expression
	IsAsync    bool
}

type EFunction struct{ Fn *Fn }

type EClassExpr struct{ Class *Class }

type EYield struct {
	ArgOrNil *Expr
	IsStar   bool
}

type EAwait struct{ Value Expr }

type EParen struct{ Value Expr }

type ETSTypeAssertion struct{ Value Expr }
type ETSConstAssertion struct{ Value Expr }
type ETSNonNull struct{ Value Expr }
type ETSAs struct{ Value Expr }
type ETSSatisfies struct{ Value Expr }
type ETSInstantiation struct{ Value Expr }

type EThis struct{}
type ESuper struct{}

type EString struct{ Value string }
type ENumber struct{ Value float64 }
type EBoolean struct{ Value bool }
type ENull struct{}
type EUndefined struct{}
type EBigInt struct{ Value string }
type ERegExp struct{ Value string }

type EMetaProperty struct {
	// One of "new.target" or "import.meta".
	Kind string
}

type EInvalid struct{}

// String builds an Expr wrapping a literal string, a common enough
// construction (synthesized event-name/attribute-name arguments) to deserve
// a helper, mirroring esbuild's `Box::from(str)` convenience in
// original_source/transformer/src/utils.rs.
func String(s string) Expr { return Expr{Data: &EString{Value: s}} }

func Bool(b bool) Expr { return Expr{Data: &EBoolean{Value: b}} }

func Null() Expr { return Expr{Data: &ENull{}} }

func Ident(name string) Expr { return Expr{Data: &EIdentifier{Name: name}} }
