package deps

import "github.com/viewmill/viewmill/internal/js_ast"

// DestructArg describes a destructuring variable declarator whose
// initializer must become a live cell: the runtime needs to know how many
// leaf bindings the pattern introduces and how to re-extract them from a
// fresh value later (the arrow function below), since the flat declared
// bindings are no longer assigned by ordinary destructuring syntax once
// the declarator's pattern is replaced with a flat array of identifiers.
//
// Grounded on original_source/transformer/src/live.rs's DestructArg.
type DestructArg struct {
	count  int
	src    js_ast.Binding
	result []string
}

// FromArrayPattern builds a DestructArg from an array destructuring
// pattern ("const [a, [b, c]] = live").
func FromArrayPattern(pat *js_ast.BArray) DestructArg {
	d := DestructArg{src: js_ast.Binding{Data: pat}}
	for _, elem := range pat.Items {
		if elem.Binding.Data == nil {
			continue
		}
		idents := identsFrom(elem.Binding)
		d.count += len(idents)
		d.result = append(d.result, idents...)
	}
	return d
}

// FromObjectPattern builds a DestructArg from an object destructuring
// pattern ("const { a, b: { c } } = live").
func FromObjectPattern(pat *js_ast.BObject) DestructArg {
	d := DestructArg{src: js_ast.Binding{Data: pat}}
	for _, prop := range pat.Properties {
		switch prop.Kind {
		case js_ast.OBPRest:
			d.result = append(d.result, prop.Key.Ident)
			d.count++
		case js_ast.OBPShorthand:
			d.result = append(d.result, prop.Key.Ident)
			d.count++
		default:
			idents := identsFrom(prop.Value)
			d.count += len(idents)
			d.result = append(d.result, idents...)
		}
	}
	return d
}

func identsFrom(b js_ast.Binding) []string {
	switch d := b.Data.(type) {
	case *js_ast.BIdentifier:
		return []string{d.Name}
	case *js_ast.BArray:
		return FromArrayPattern(d).result
	case *js_ast.BObject:
		return FromObjectPattern(d).result
	case *js_ast.BAssign:
		return identsFrom(d.Left)
	default:
		return nil
	}
}

// ToExpr builds `[count, (src) => [result...]]`, the argument the live
// runtime call passes so it can re-derive the flattened bindings from a
// freshly computed value on every update.
func (d DestructArg) ToExpr() js_ast.Expr {
	items := make([]js_ast.Expr, len(d.result))
	for i, name := range d.result {
		items[i] = js_ast.Ident(name)
	}
	arrow := js_ast.Expr{Data: &js_ast.EArrow{
		Params: []js_ast.Binding{d.src},
		Expr:   &js_ast.Expr{Data: &js_ast.EArray{Items: items}},
	}}
	return js_ast.Expr{Data: &js_ast.EArray{Items: []js_ast.Expr{
		{Data: &js_ast.ENumber{Value: float64(d.count)}},
		arrow,
	}}}
}

// ToDeclPat returns the flat array pattern that replaces the original
// nested destructuring pattern at the declaration site: `const [a, b, c]`
// instead of `const [a, [b, c]]`, since the live runtime call now supplies
// the flattened values directly.
func (d DestructArg) ToDeclPat() js_ast.Binding {
	items := make([]js_ast.ArrayBindingElem, len(d.result))
	for i, name := range d.result {
		items[i] = js_ast.ArrayBindingElem{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: name}}}
	}
	return js_ast.Binding{Data: &js_ast.BArray{Items: items}}
}

// Names exposes the flattened leaf identifier names, used by
// internal/scope to insert each as a Live binding.
func (d DestructArg) Names() []string { return d.result }
