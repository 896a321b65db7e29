package js_ast

// Fn is the shared shape of a function declaration, function expression,
// and method body — everything except arrow functions, which keep their
// own shorter EArrow/MMethod-adjacent shape since they can't be generators
// and may have an expression body.
type Fn struct {
	Name        *string
	Params      []Binding
	Body        SBlock
	IsAsync     bool
	IsGenerator bool
}
