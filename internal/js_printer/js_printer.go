// Package js_printer turns this repo's internal/js_ast grammar back into
// source text. It plays the same role evanw/esbuild's internal/js_printer
// plays for esbuild's own grammar: a single recursive printer walking
// Expr/Stmt with an explicit precedence level threaded through so it knows
// when a subexpression needs parentheses. Unlike the teacher's printer,
// there is no minification and no source-map emission — both are out of
// scope (spec.md §1 Non-goals) and this repo's AST has no Ref/SymbolMap to
// resolve, so renaming is never this package's concern.
package js_printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viewmill/viewmill/internal/js_ast"
)

// Options configures the rendered text. Indent is the unit repeated per
// nesting level; the teacher's printer supports a similar knob for
// minified vs. readable output, trimmed here to just indent width since
// minification is out of scope.
type Options struct {
	Indent string
}

func DefaultOptions() Options { return Options{Indent: "  "} }

type printer struct {
	sb      strings.Builder
	opts    Options
	indent  int
}

// Print renders a full module.
func Print(module *js_ast.Module, opts Options) string {
	p := &printer{opts: opts}
	p.printStmts(module.Stmts)
	return p.sb.String()
}

// PrintExpr renders a single expression in isolation, for callers (the
// tests) that only need one fragment of text rather than a whole module.
func PrintExpr(e js_ast.Expr, opts Options) string {
	p := &printer{opts: opts}
	p.printExpr(e, js_ast.LComma)
	return p.sb.String()
}

// PrintStmt renders a single statement in isolation.
func PrintStmt(s js_ast.Stmt, opts Options) string {
	p := &printer{opts: opts}
	p.printStmt(s)
	return p.sb.String()
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.sb.WriteString(p.opts.Indent)
	}
}

func (p *printer) printStmts(list []js_ast.Stmt) {
	for _, s := range list {
		p.writeIndent()
		p.printStmt(s)
	}
}

func (p *printer) printBlock(b js_ast.SBlock) {
	p.sb.WriteString("{\n")
	p.indent++
	p.printStmts(b.Stmts)
	p.indent--
	p.writeIndent()
	p.sb.WriteString("}")
}

func (p *printer) printStmt(s js_ast.Stmt) {
	switch d := s.Data.(type) {
	case *js_ast.SBlock:
		p.printBlock(*d)
		p.sb.WriteString("\n")

	case *js_ast.SEmpty:
		p.sb.WriteString(";\n")

	case *js_ast.SDebugger:
		p.sb.WriteString("debugger;\n")

	case *js_ast.SWith:
		p.sb.WriteString("with (")
		p.printExpr(d.Obj, js_ast.LLowest)
		p.sb.WriteString(") ")
		p.printStmt(d.Body)

	case *js_ast.SReturn:
		p.sb.WriteString("return")
		if d.ValueOrNil != nil {
			p.sb.WriteString(" ")
			p.printExpr(*d.ValueOrNil, js_ast.LLowest)
		}
		p.sb.WriteString(";\n")

	case *js_ast.SLabeled:
		p.sb.WriteString(d.Name)
		p.sb.WriteString(": ")
		p.printStmt(d.Stmt)

	case *js_ast.SBreak:
		p.sb.WriteString("break")
		if d.LabelOrNil != nil {
			p.sb.WriteString(" " + *d.LabelOrNil)
		}
		p.sb.WriteString(";\n")

	case *js_ast.SContinue:
		p.sb.WriteString("continue")
		if d.LabelOrNil != nil {
			p.sb.WriteString(" " + *d.LabelOrNil)
		}
		p.sb.WriteString(";\n")

	case *js_ast.SIf:
		p.sb.WriteString("if (")
		p.printExpr(d.Test, js_ast.LLowest)
		p.sb.WriteString(") ")
		p.printStmt(d.Yes)
		if d.NoOrNil != nil {
			p.writeIndent()
			p.sb.WriteString("else ")
			p.printStmt(*d.NoOrNil)
		}

	case *js_ast.SSwitch:
		p.sb.WriteString("switch (")
		p.printExpr(d.Test, js_ast.LLowest)
		p.sb.WriteString(") {\n")
		p.indent++
		for _, c := range d.Cases {
			p.writeIndent()
			if c.TestOrNil != nil {
				p.sb.WriteString("case ")
				p.printExpr(*c.TestOrNil, js_ast.LLowest)
				p.sb.WriteString(":\n")
			} else {
				p.sb.WriteString("default:\n")
			}
			p.indent++
			p.printStmts(c.Body)
			p.indent--
		}
		p.indent--
		p.writeIndent()
		p.sb.WriteString("}\n")

	case *js_ast.SThrow:
		p.sb.WriteString("throw ")
		p.printExpr(d.Value, js_ast.LLowest)
		p.sb.WriteString(";\n")

	case *js_ast.STry:
		p.sb.WriteString("try ")
		p.printBlock(d.Body)
		if d.Catch != nil {
			p.sb.WriteString(" catch ")
			if d.Catch.BindingOrNil != nil {
				p.sb.WriteString("(")
				p.printBinding(*d.Catch.BindingOrNil)
				p.sb.WriteString(") ")
			}
			p.printBlock(d.Catch.Body)
		}
		if d.FinallyOrNil != nil {
			p.sb.WriteString(" finally ")
			p.printBlock(*d.FinallyOrNil)
		}
		p.sb.WriteString("\n")

	case *js_ast.SWhile:
		p.sb.WriteString("while (")
		p.printExpr(d.Test, js_ast.LLowest)
		p.sb.WriteString(") ")
		p.printStmt(d.Body)

	case *js_ast.SDoWhile:
		p.sb.WriteString("do ")
		p.printStmt(d.Body)
		p.writeIndent()
		p.sb.WriteString("while (")
		p.printExpr(d.Test, js_ast.LLowest)
		p.sb.WriteString(");\n")

	case *js_ast.SFor:
		p.sb.WriteString("for (")
		if d.InitOrNil != nil {
			p.printForInit(*d.InitOrNil)
		}
		p.sb.WriteString("; ")
		if d.TestOrNil != nil {
			p.printExpr(*d.TestOrNil, js_ast.LLowest)
		}
		p.sb.WriteString("; ")
		if d.UpdateOrNil != nil {
			p.printExpr(*d.UpdateOrNil, js_ast.LLowest)
		}
		p.sb.WriteString(") ")
		p.printStmt(d.Body)

	case *js_ast.SForIn:
		p.sb.WriteString("for (")
		p.printForBinding(d.Left)
		p.sb.WriteString(" in ")
		p.printExpr(d.Right, js_ast.LLowest)
		p.sb.WriteString(") ")
		p.printStmt(d.Body)

	case *js_ast.SForOf:
		p.sb.WriteString("for ")
		if d.IsAwait {
			p.sb.WriteString("await ")
		}
		p.sb.WriteString("(")
		p.printForBinding(d.Left)
		p.sb.WriteString(" of ")
		p.printExpr(d.Right, js_ast.LComma)
		p.sb.WriteString(") ")
		p.printStmt(d.Body)

	case *js_ast.SDecl:
		p.printDecl(d.Decl)
		p.sb.WriteString(";\n")

	case *js_ast.SExpr:
		p.printExpr(d.Value, js_ast.LLowest)
		p.sb.WriteString(";\n")

	case *js_ast.SImport:
		p.printImport(d)

	case *js_ast.SExportNamedDecl:
		p.sb.WriteString("export ")
		if d.Decl != nil {
			p.printDecl(*d.Decl)
			p.sb.WriteString(";\n")
		} else {
			p.sb.WriteString("{ ")
			for i, spec := range d.Specifiers {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.sb.WriteString(spec.Local)
				if spec.Exported != spec.Local {
					p.sb.WriteString(" as " + spec.Exported)
				}
			}
			p.sb.WriteString(" };\n")
		}

	case *js_ast.SExportDefaultDecl:
		p.sb.WriteString("export default ")
		p.printDecl(d.Decl)
		p.sb.WriteString(";\n")

	case *js_ast.SExportDefaultExpr:
		p.sb.WriteString("export default ")
		p.printExpr(d.Value, js_ast.LComma)
		p.sb.WriteString(";\n")

	default:
		p.sb.WriteString(fmt.Sprintf("/* unprintable stmt %T */\n", d))
	}
}

func (p *printer) printForInit(init js_ast.ForInit) {
	if init.Decl != nil {
		p.printDecl(init.Decl.Decl)
	} else if init.Expr != nil {
		p.printExpr(*init.Expr, js_ast.LLowest)
	}
}

func (p *printer) printForBinding(b js_ast.ForBinding) {
	if b.Decl != nil {
		p.printDecl(b.Decl.Decl)
	} else if b.Target != nil {
		p.printAssignTarget(*b.Target)
	}
}

func (p *printer) printImport(d *js_ast.SImport) {
	p.sb.WriteString("import ")
	wroteClause := false
	if d.DefaultName != nil {
		p.sb.WriteString(*d.DefaultName)
		wroteClause = true
	}
	if d.NamespaceName != nil {
		if wroteClause {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString("* as " + *d.NamespaceName)
		wroteClause = true
	}
	if len(d.Named) > 0 {
		if wroteClause {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString("{ ")
		for i, spec := range d.Named {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(spec.Imported)
			if spec.Local != spec.Imported {
				p.sb.WriteString(" as " + spec.Local)
			}
		}
		p.sb.WriteString(" }")
		wroteClause = true
	}
	if wroteClause {
		p.sb.WriteString(" from ")
	}
	p.sb.WriteString(strconv.Quote(d.Path))
	p.sb.WriteString(";\n")
}

func (p *printer) printDecl(d js_ast.Decl) {
	switch data := d.Data.(type) {
	case *js_ast.DClass:
		p.printClass(&data.Class)
	case *js_ast.DFunction:
		p.printFn("function", &data.Fn)
	case *js_ast.DVar:
		p.printVarDecl(data)
	case *js_ast.DTSInterface:
		p.sb.WriteString("interface " + data.Name + " {}")
	case *js_ast.DTSTypeAlias:
		p.sb.WriteString("type " + data.Name + " = unknown")
	case *js_ast.DTSEnum:
		p.sb.WriteString("enum " + data.Name + " {}")
	case *js_ast.DTSModule:
		p.sb.WriteString("module " + data.Name + " {}")
	case *js_ast.DUsing:
		p.printUsing(data)
	default:
		p.sb.WriteString(fmt.Sprintf("/* unprintable decl %T */", data))
	}
}

func (p *printer) printVarDecl(d *js_ast.DVar) {
	switch d.Kind {
	case js_ast.VarVar:
		p.sb.WriteString("var ")
	case js_ast.VarLet:
		p.sb.WriteString("let ")
	case js_ast.VarConst:
		p.sb.WriteString("const ")
	}
	p.printDeclarators(d.Declarators)
}

func (p *printer) printUsing(d *js_ast.DUsing) {
	if d.IsAwait {
		p.sb.WriteString("await ")
	}
	p.sb.WriteString("using ")
	p.printDeclarators(d.Declarators)
}

func (p *printer) printDeclarators(list []js_ast.Declarator) {
	for i, decl := range list {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.printBinding(decl.Binding)
		if decl.ValueOrNil != nil {
			p.sb.WriteString(" = ")
			p.printExpr(*decl.ValueOrNil, js_ast.LAssign)
		}
	}
}

func (p *printer) printBinding(b js_ast.Binding) {
	switch data := b.Data.(type) {
	case *js_ast.BIdentifier:
		p.sb.WriteString(data.Name)
	case *js_ast.BArray:
		p.sb.WriteString("[")
		for i, item := range data.Items {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			if item.Binding.Data == nil {
				continue
			}
			if item.IsSpread {
				p.sb.WriteString("...")
			}
			p.printBinding(item.Binding)
			if item.DefaultVal != nil {
				p.sb.WriteString(" = ")
				p.printExpr(*item.DefaultVal, js_ast.LAssign)
			}
		}
		p.sb.WriteString("]")
	case *js_ast.BObject:
		p.sb.WriteString("{ ")
		for i, prop := range data.Properties {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			switch prop.Kind {
			case js_ast.OBPRest:
				p.sb.WriteString("..." + prop.Key.Ident)
			case js_ast.OBPShorthand:
				p.sb.WriteString(prop.Key.Ident)
				if prop.DefaultVal != nil {
					p.sb.WriteString(" = ")
					p.printExpr(*prop.DefaultVal, js_ast.LAssign)
				}
			default:
				p.printPropertyName(prop.Key)
				p.sb.WriteString(": ")
				p.printBinding(prop.Value)
				if prop.DefaultVal != nil {
					p.sb.WriteString(" = ")
					p.printExpr(*prop.DefaultVal, js_ast.LAssign)
				}
			}
		}
		p.sb.WriteString(" }")
	case *js_ast.BAssign:
		p.printBinding(data.Left)
		p.sb.WriteString(" = ")
		p.printExpr(data.Default, js_ast.LAssign)
	case *js_ast.BInvalid:
		p.sb.WriteString("/* invalid */")
	default:
		p.sb.WriteString(fmt.Sprintf("/* unprintable binding %T */", data))
	}
}

func (p *printer) printAssignTarget(t js_ast.AssignTarget) {
	if t.Pat != nil {
		p.printBinding(*t.Pat)
	} else if t.Expr != nil {
		p.printExpr(*t.Expr, js_ast.LAssign)
	}
}

func (p *printer) printPropertyName(name js_ast.PropertyName) {
	if name.IsComputed() {
		p.sb.WriteString("[")
		p.printExpr(name.Computed, js_ast.LComma)
		p.sb.WriteString("]")
		return
	}
	p.sb.WriteString(name.Ident)
}

func (p *printer) printParams(params []js_ast.Binding) {
	p.sb.WriteString("(")
	for i, param := range params {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.printBinding(param)
	}
	p.sb.WriteString(")")
}

func (p *printer) printFn(keyword string, fn *js_ast.Fn) {
	if fn.IsAsync {
		p.sb.WriteString("async ")
	}
	p.sb.WriteString(keyword)
	if fn.IsGenerator {
		p.sb.WriteString("*")
	}
	if fn.Name != nil {
		p.sb.WriteString(" " + *fn.Name)
	}
	p.printParams(fn.Params)
	p.sb.WriteString(" ")
	p.printBlock(fn.Body)
}

func (p *printer) printClass(c *js_ast.Class) {
	p.sb.WriteString("class")
	if c.Name != nil {
		p.sb.WriteString(" " + *c.Name)
	}
	if c.SuperClass != nil {
		p.sb.WriteString(" extends ")
		p.printExpr(*c.SuperClass, js_ast.LNew)
	}
	p.sb.WriteString(" {\n")
	p.indent++
	for _, m := range c.Body {
		p.writeIndent()
		p.printClassMember(&m)
	}
	p.indent--
	p.writeIndent()
	p.sb.WriteString("}")
}

func (p *printer) printClassMember(m *js_ast.ClassMember) {
	if m.IsStatic {
		p.sb.WriteString("static ")
	}
	switch m.Kind {
	case js_ast.MConstructor:
		p.sb.WriteString("constructor(")
		for i, param := range m.CtorParams {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.printBinding(param.Binding)
		}
		p.sb.WriteString(") ")
		p.printBlock(m.Fn.Body)
		p.sb.WriteString("\n")

	case js_ast.MMethod:
		if m.Fn.IsAsync {
			p.sb.WriteString("async ")
		}
		if m.Fn.IsGenerator {
			p.sb.WriteString("*")
		}
		p.printPropertyName(m.Key)
		p.printParams(m.Fn.Params)
		p.sb.WriteString(" ")
		p.printBlock(m.Fn.Body)
		p.sb.WriteString("\n")

	case js_ast.MPrivateMethod:
		p.sb.WriteString("#" + m.PrivateName)
		p.printParams(m.Fn.Params)
		p.sb.WriteString(" ")
		p.printBlock(m.Fn.Body)
		p.sb.WriteString("\n")

	case js_ast.MField:
		p.printPropertyName(m.Key)
		if m.ValueOrNil != nil {
			p.sb.WriteString(" = ")
			p.printExpr(*m.ValueOrNil, js_ast.LAssign)
		}
		p.sb.WriteString(";\n")

	case js_ast.MPrivateField:
		p.sb.WriteString("#" + m.PrivateName)
		if m.ValueOrNil != nil {
			p.sb.WriteString(" = ")
			p.printExpr(*m.ValueOrNil, js_ast.LAssign)
		}
		p.sb.WriteString(";\n")

	case js_ast.MStaticBlock:
		p.sb.WriteString("{\n")
		p.indent++
		p.printStmts(m.Block.Stmts)
		p.indent--
		p.writeIndent()
		p.sb.WriteString("}\n")

	case js_ast.MAutoAccessor:
		if m.IsGetter {
			p.sb.WriteString("get ")
		} else if m.IsSetter {
			p.sb.WriteString("set ")
		} else {
			p.sb.WriteString("accessor ")
		}
		p.printPropertyName(m.Key)
		p.printParams(m.Fn.Params)
		p.sb.WriteString(" ")
		p.printBlock(m.Fn.Body)
		p.sb.WriteString("\n")

	case js_ast.MTSIndexSignature:
		p.sb.WriteString("/* index signature */\n")
	}
}

// wrap writes a parenthesized rendering of e unless its own precedence
// level is at least as tight as the level the surrounding context demands.
func (p *printer) wrap(e js_ast.Expr, level js_ast.L, exprLevel js_ast.L) {
	needsParens := exprLevel < level
	if needsParens {
		p.sb.WriteString("(")
	}
	p.printExpr(e, exprLevel)
	if needsParens {
		p.sb.WriteString(")")
	}
}

func (p *printer) printExpr(e js_ast.Expr, level js_ast.L) {
	switch d := e.Data.(type) {
	case *js_ast.EArray:
		p.sb.WriteString("[")
		for i, item := range d.Items {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			if item.Data == nil {
				continue
			}
			p.printExpr(item, js_ast.LComma)
		}
		p.sb.WriteString("]")

	case *js_ast.EObject:
		p.sb.WriteString("{ ")
		for i, prop := range d.Properties {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.printProperty(prop)
		}
		p.sb.WriteString(" }")

	case *js_ast.ESpread:
		p.sb.WriteString("...")
		p.printExpr(d.Value, js_ast.LComma)

	case *js_ast.EUnary:
		op := d.Op
		if op.IsPostfix() {
			p.printSub(d.Value, js_ast.LPostfix)
			if op == js_ast.UnOpPostDec {
				p.sb.WriteString("--")
			} else {
				p.sb.WriteString("++")
			}
			return
		}
		text := op.Text()
		p.sb.WriteString(text)
		if isWordOp(text) {
			p.sb.WriteString(" ")
		}
		p.printSub(d.Value, js_ast.LPrefix)

	case *js_ast.EBinary:
		lvl := d.Op.Level()
		p.printSub(d.Left, lvl)
		p.sb.WriteString(" " + d.Op.Text() + " ")
		p.printSub(d.Right, lvl+1)
		_ = level

	case *js_ast.EAssign:
		p.printAssignTarget(d.Left)
		p.sb.WriteString(" " + d.Op.Text() + " ")
		p.printSub(d.Right, js_ast.LAssign)

	case *js_ast.ECond:
		p.printSub(d.Test, js_ast.LNullishCoalescing)
		p.sb.WriteString(" ? ")
		p.printSub(d.Yes, js_ast.LAssign)
		p.sb.WriteString(" : ")
		p.printSub(d.No, js_ast.LAssign)

	case *js_ast.ESeq:
		for i, x := range d.Exprs {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.printSub(x, js_ast.LAssign)
		}

	case *js_ast.ECall:
		if d.Callee.IsSuper {
			p.sb.WriteString("super")
		} else if d.Callee.IsImport {
			p.sb.WriteString("import")
		} else if d.Callee.Expr != nil {
			p.printSub(*d.Callee.Expr, js_ast.LCall)
		}
		if d.Optional {
			p.sb.WriteString("?.")
		}
		p.sb.WriteString("(")
		for i, arg := range d.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.printExpr(arg, js_ast.LComma)
		}
		p.sb.WriteString(")")

	case *js_ast.ENew:
		p.sb.WriteString("new ")
		p.printSub(d.Callee, js_ast.LMember)
		if d.Args != nil {
			p.sb.WriteString("(")
			for i, arg := range d.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.printExpr(arg, js_ast.LComma)
			}
			p.sb.WriteString(")")
		}

	case *js_ast.EMember:
		if _, isCall := d.Obj.Data.(*js_ast.ECall); isCall {
			p.printExpr(d.Obj, js_ast.LMember)
		} else {
			p.printSub(d.Obj, js_ast.LMember)
		}
		p.printMemberProp(d.Prop, d.Optional)

	case *js_ast.ESuperMember:
		p.sb.WriteString("super")
		p.printMemberProp(d.Prop, false)

	case *js_ast.EIdentifier:
		p.sb.WriteString(d.Name)

	case *js_ast.EPrivateName:
		p.sb.WriteString("#" + d.Name)

	case *js_ast.ETemplate:
		if d.Tag != nil {
			p.printSub(*d.Tag, js_ast.LMember)
		}
		p.sb.WriteString("`" + d.Head)
		for _, part := range d.Parts {
			p.sb.WriteString("${")
			p.printExpr(part.Expr, js_ast.LLowest)
			p.sb.WriteString("}" + part.Cooked)
		}
		p.sb.WriteString("`")

	case *js_ast.EArrow:
		p.wrapArrow(d, level)

	case *js_ast.EFunction:
		p.printFn("function", d.Fn)

	case *js_ast.EClassExpr:
		p.printClass(d.Class)

	case *js_ast.EYield:
		p.sb.WriteString("yield")
		if d.IsStar {
			p.sb.WriteString("*")
		}
		if d.ArgOrNil != nil {
			p.sb.WriteString(" ")
			p.printSub(*d.ArgOrNil, js_ast.LYield)
		}

	case *js_ast.EAwait:
		p.sb.WriteString("await ")
		p.printSub(d.Value, js_ast.LPrefix)

	case *js_ast.EParen:
		p.sb.WriteString("(")
		p.printExpr(d.Value, js_ast.LLowest)
		p.sb.WriteString(")")

	case *js_ast.ETSTypeAssertion:
		p.printExpr(d.Value, level)
	case *js_ast.ETSConstAssertion:
		p.printSub(d.Value, js_ast.LMember)
		p.sb.WriteString(" as const")
	case *js_ast.ETSNonNull:
		p.printSub(d.Value, js_ast.LPostfix)
		p.sb.WriteString("!")
	case *js_ast.ETSAs:
		p.printSub(d.Value, js_ast.LMember)
		p.sb.WriteString(" as unknown")
	case *js_ast.ETSSatisfies:
		p.printSub(d.Value, js_ast.LMember)
		p.sb.WriteString(" satisfies unknown")
	case *js_ast.ETSInstantiation:
		p.printExpr(d.Value, level)

	case *js_ast.EThis:
		p.sb.WriteString("this")
	case *js_ast.ESuper:
		p.sb.WriteString("super")

	case *js_ast.EString:
		p.sb.WriteString(strconv.Quote(d.Value))
	case *js_ast.ENumber:
		p.sb.WriteString(formatNumber(d.Value))
	case *js_ast.EBoolean:
		if d.Value {
			p.sb.WriteString("true")
		} else {
			p.sb.WriteString("false")
		}
	case *js_ast.ENull:
		p.sb.WriteString("null")
	case *js_ast.EUndefined:
		p.sb.WriteString("void 0")
	case *js_ast.EBigInt:
		p.sb.WriteString(d.Value + "n")
	case *js_ast.ERegExp:
		p.sb.WriteString(d.Value)

	case *js_ast.EMetaProperty:
		p.sb.WriteString(d.Kind)

	case *js_ast.EJSXElement, *js_ast.EJSXFragment:
		// internal/tr rewrites every JSX node into runtime calls before the
		// module ever reaches this printer; reaching here means a JSX node
		// escaped the transform untouched.
		panic("js_printer: untransformed JSX node reached the printer")

	case *js_ast.EInvalid:
		p.sb.WriteString("/* invalid */")

	default:
		p.sb.WriteString(fmt.Sprintf("/* unprintable expr %T */", d))
	}
}

// printSub prints a subexpression, parenthesizing it if its own precedence
// is lower than minLevel demands.
func (p *printer) printSub(e js_ast.Expr, minLevel js_ast.L) {
	lvl := exprLevel(e)
	if lvl < minLevel {
		p.sb.WriteString("(")
		p.printExpr(e, js_ast.LLowest)
		p.sb.WriteString(")")
		return
	}
	p.printExpr(e, minLevel)
}

// exprLevel reports the intrinsic precedence of an expression node so
// printSub knows whether it needs parens in a tighter context. Atoms and
// member forms report LMember, calls and "new" report LCall (a call used as
// a member object is printed bare by printExpr's EMember case); everything
// else is classified by its own operator.
func exprLevel(e js_ast.Expr) js_ast.L {
	switch d := e.Data.(type) {
	case *js_ast.EBinary:
		return d.Op.Level()
	case *js_ast.EUnary:
		if d.Op.IsPostfix() {
			return js_ast.LPostfix
		}
		return js_ast.LPrefix
	case *js_ast.EAssign:
		return js_ast.LAssign
	case *js_ast.ECond:
		return js_ast.LConditional
	case *js_ast.ESeq:
		return js_ast.LComma
	case *js_ast.EYield:
		return js_ast.LYield
	case *js_ast.EArrow:
		return js_ast.LAssign
	case *js_ast.ECall, *js_ast.ENew:
		return js_ast.LCall
	case *js_ast.EMember, *js_ast.ESuperMember:
		return js_ast.LMember
	default:
		return js_ast.LMember
	}
}

func (p *printer) wrapArrow(d *js_ast.EArrow, level js_ast.L) {
	needsParens := level > js_ast.LAssign
	if needsParens {
		p.sb.WriteString("(")
	}
	if d.IsAsync {
		p.sb.WriteString("async ")
	}
	p.printParams(d.Params)
	p.sb.WriteString(" => ")
	if d.Block != nil {
		p.printBlock(*d.Block)
	} else if d.Expr != nil {
		if _, isObj := (*d.Expr).Data.(*js_ast.EObject); isObj {
			p.sb.WriteString("(")
			p.printExpr(*d.Expr, js_ast.LComma)
			p.sb.WriteString(")")
		} else {
			p.printSub(*d.Expr, js_ast.LAssign)
		}
	}
	if needsParens {
		p.sb.WriteString(")")
	}
}

func (p *printer) printMemberProp(prop js_ast.MemberProp, optional bool) {
	if optional {
		p.sb.WriteString("?.")
	}
	if prop.Computed.Data != nil {
		p.sb.WriteString("[")
		p.printExpr(prop.Computed, js_ast.LComma)
		p.sb.WriteString("]")
		return
	}
	if !optional {
		p.sb.WriteString(".")
	}
	if prop.PrivateName != "" {
		p.sb.WriteString("#" + prop.PrivateName)
		return
	}
	p.sb.WriteString(prop.Ident)
}

func (p *printer) printProperty(prop js_ast.Property) {
	switch prop.Kind {
	case js_ast.PropertySpread:
		p.sb.WriteString("...")
		p.printExpr(prop.Value, js_ast.LComma)
	case js_ast.PropertyShorthand:
		p.sb.WriteString(prop.Key.Ident)
	case js_ast.PropertyGetter:
		p.sb.WriteString("get ")
		p.printPropertyName(prop.Key)
		p.printParams(prop.Fn.Params)
		p.sb.WriteString(" ")
		p.printBlock(prop.Fn.Body)
	case js_ast.PropertySetter:
		p.sb.WriteString("set ")
		p.printPropertyName(prop.Key)
		p.printParams(prop.Fn.Params)
		p.sb.WriteString(" ")
		p.printBlock(prop.Fn.Body)
	case js_ast.PropertyMethod:
		if prop.Fn.IsAsync {
			p.sb.WriteString("async ")
		}
		if prop.Fn.IsGenerator {
			p.sb.WriteString("*")
		}
		p.printPropertyName(prop.Key)
		p.printParams(prop.Fn.Params)
		p.sb.WriteString(" ")
		p.printBlock(prop.Fn.Body)
	default:
		p.printPropertyName(prop.Key)
		p.sb.WriteString(": ")
		p.printExpr(prop.Value, js_ast.LAssign)
	}
}

func isWordOp(text string) bool {
	switch text {
	case "void", "typeof", "delete":
		return true
	}
	return false
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
