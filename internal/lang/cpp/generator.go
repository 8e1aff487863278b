// File: generator.go
// Title: C++ Generator
// Description: Renders a tree parsed from the Python subset as a complete
//              C++ program. Module level code becomes main, defs become
//              functions declared before it.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cpp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
)

// Options controls the generated C++
type Options struct {
	// IndentWidth is the number of spaces per level; 4 when zero
	IndentWidth int
}

// Generate renders prog, which must have passed python.Analyze without
// errors
func Generate(prog *ast.Program, opts Options) (string, error) {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 4
	}
	g := &generator{
		indent:  strings.Repeat(" ", opts.IndentWidth),
		globals: map[string]*decl{},
		returns: map[string]string{},
		names:   map[string]bool{},
	}
	g.program(prog)
	if g.err != nil {
		return "", g.err
	}
	return g.out.String(), nil
}

type generator struct {
	indent string
	out    strings.Builder

	plan    *plan
	globals map[string]*decl
	// synthesized return types by function name
	returns map[string]string
	// every name the source uses
	names map[string]bool
	// true while rendering the body of the generated main
	inMain bool
	err    error
}

func (g *generator) emit(depth int, format string, args ...interface{}) {
	for i := 0; i < depth; i++ {
		g.out.WriteString(g.indent)
	}
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteByte('\n')
}

func (g *generator) fail(n ast.Node, format string, args ...interface{}) {
	if g.err == nil {
		g.err = fmt.Errorf("cpp generator: line %d: %s", n.Pos().Line, fmt.Sprintf(format, args...))
	}
}

func (g *generator) program(prog *ast.Program) {
	var (
		defs    []*ast.FunctionDefinition
		mainDef *ast.FunctionDefinition
		top     []ast.Stmt
	)
	for _, s := range prog.Body {
		switch s := s.(type) {
		case *ast.FunctionDefinition:
			if s.Name == "main" {
				mainDef = s
			} else {
				defs = append(defs, s)
			}
		case *ast.IfStatement:
			if isMainGuard(s) {
				top = append(top, ast.Stmts(s.Then)...)
			} else {
				top = append(top, s)
			}
		default:
			top = append(top, s)
		}
	}
	mainBody := inlineMain(top, mainDef)
	g.collectNames(prog)

	mainPlan := g.planBody(mainBody)
	funcPlans := make([]*plan, len(defs))
	for i, fn := range defs {
		funcPlans[i] = g.planBody(fn.Body.Stmts)
		g.markGlobals(fn, funcPlans[i], mainPlan)
	}
	for i, fn := range defs {
		g.plan = funcPlans[i]
		g.returns[fn.Name] = g.returnType(fn)
	}
	// values produced by calls are typed once return types are known
	for _, p := range append([]*plan{mainPlan}, funcPlans...) {
		g.plan = p
		p.refine(g)
	}
	for i, fn := range defs {
		g.markGlobals(fn, funcPlans[i], mainPlan)
	}

	g.emit(0, "#include <iostream>")
	g.emit(0, "#include <string>")
	g.emit(0, "using namespace std;")
	g.out.WriteByte('\n')

	if len(g.globals) > 0 {
		for _, d := range mainPlan.order {
			if d.global {
				g.emit(0, "%s %s;", d.typ, d.name)
			}
		}
		g.out.WriteByte('\n')
	}

	// prototypes let a function call one defined after it
	for _, fn := range defs {
		g.emit(0, "%s %s();", g.returns[fn.Name], fn.Name)
	}
	if len(defs) > 0 {
		g.out.WriteByte('\n')
	}

	for i, fn := range defs {
		g.plan = funcPlans[i]
		g.emit(0, "%s %s() {", g.returns[fn.Name], fn.Name)
		g.body(fn.Body.Stmts, 1)
		g.emit(0, "}")
		g.out.WriteByte('\n')
	}

	g.plan = mainPlan
	g.inMain = true
	g.emit(0, "int main() {")
	g.body(mainBody, 1)
	g.emit(1, "return 0;")
	g.emit(0, "}")
}

// isMainGuard matches if __name__ == "__main__":
func isMainGuard(s *ast.IfStatement) bool {
	b, ok := s.Cond.(*ast.BinaryExpression)
	if !ok || b.Op != "==" || s.Else != nil {
		return false
	}
	id, ok := b.Left.(*ast.Identifier)
	lit, ok2 := b.Right.(*ast.StringLiteral)
	return ok && ok2 && id.Name == "__name__" && lit.Value == "__main__"
}

// inlineMain replaces module level main() calls with the body of def main
func inlineMain(top []ast.Stmt, mainDef *ast.FunctionDefinition) []ast.Stmt {
	if mainDef == nil {
		return top
	}
	var out []ast.Stmt
	for _, s := range top {
		if call, ok := s.(*ast.FunctionCall); ok && call.Name == "main" && len(call.Args) == 0 {
			out = append(out, mainDef.Body.Stmts...)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (g *generator) collectNames(prog *ast.Program) {
	ast.Inspect(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Identifier:
			g.names[n.Name] = true
		case *ast.Assignment:
			g.names[n.Name] = true
		case *ast.ForLoop:
			g.names[n.Var] = true
		case *ast.FunctionDefinition:
			g.names[n.Name] = true
		case *ast.FunctionCall:
			g.names[n.Name] = true
		}
		return true
	})
}

// unused returns base, or base with a numeric suffix, such that the
// result names nothing in the source
func (g *generator) unused(base string) string {
	name := base
	for i := 2; g.names[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	return name
}

// markGlobals moves module level variables read by fn to file scope
func (g *generator) markGlobals(fn *ast.FunctionDefinition, local, module *plan) {
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		id, ok := n.(*ast.Identifier)
		if !ok {
			return true
		}
		if _, isLocal := local.decls[id.Name]; isLocal {
			return true
		}
		if d, ok := module.decls[id.Name]; ok && d.typ != autoType && !d.global {
			d.global = true
			d.hoisted = false
			g.globals[d.name] = d
		}
		return true
	})
}

// returnType derives a function's type from its first valued return
func (g *generator) returnType(fn *ast.FunctionDefinition) string {
	result := "void"
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		ret, ok := n.(*ast.ReturnStatement)
		if !ok || ret.Value == nil || result != "void" {
			return result == "void"
		}
		if t := g.typeOf(ret.Value); t.IsKnown() {
			result = string(t)
		} else {
			result = autoType
		}
		return false
	})
	return result
}

// body writes hoisted declarations followed by the statements
func (g *generator) body(stmts []ast.Stmt, depth int) {
	for _, d := range g.plan.order {
		if d.hoisted && !d.global {
			g.emit(depth, "%s %s;", d.typ, d.name)
			d.emitted = true
		}
	}
	g.stmts(stmts, depth)
}

func (g *generator) stmts(list []ast.Stmt, depth int) {
	for _, s := range list {
		g.stmt(s, depth)
	}
}

func (g *generator) stmt(s ast.Stmt, depth int) {
	switch s := s.(type) {
	case *ast.Assignment:
		g.assign(s, depth)
	case *ast.PrintStatement:
		g.print(s, depth)
	case *ast.IfStatement:
		links, final := s.Branches()
		for i, link := range links {
			if i == 0 {
				g.emit(depth, "if (%s) {", g.expr(link.Cond))
			} else {
				g.emit(depth, "} else if (%s) {", g.expr(link.Cond))
			}
			g.stmts(ast.Stmts(link.Then), depth+1)
		}
		if final != nil {
			g.emit(depth, "} else {")
			g.stmts(ast.Stmts(final), depth+1)
		}
		g.emit(depth, "}")
	case *ast.WhileLoop:
		g.emit(depth, "while (%s) {", g.expr(s.Cond))
		g.stmts(ast.Stmts(s.Body), depth+1)
		g.emit(depth, "}")
	case *ast.ForLoop:
		g.forLoop(s, depth)
	case *ast.ReturnStatement:
		switch {
		case s.Value != nil:
			g.emit(depth, "return %s;", g.expr(s.Value))
		case g.inMain:
			g.emit(depth, "return 0;")
		default:
			g.emit(depth, "return;")
		}
	case *ast.Block:
		g.stmts(s.Stmts, depth)
	case *ast.EmptyStatement:
	case *ast.Increment:
		g.emit(depth, "%s%s;", s.Name, s.Op)
	case ast.Expr:
		g.emit(depth, "%s;", g.expr(s))
	default:
		g.fail(s, "unexpected %s", s.Kind())
	}
}

func (g *generator) assign(s *ast.Assignment, depth int) {
	d, _ := g.lookup(s.Name)
	declaring := d != nil && d.site == ast.Node(s) && !d.hoisted && !d.global && !d.emitted

	if prompt, ok := inputRead(s.Value); ok {
		if declaring {
			g.emit(depth, "%s %s;", d.typ, s.Name)
			d.emitted = true
		}
		if prompt != nil {
			g.emit(depth, "cout << %s;", g.expr(prompt))
		}
		g.emit(depth, "cin >> %s;", s.Name)
		return
	}

	if declaring {
		g.emit(depth, "%s %s = %s;", d.typ, s.Name, g.expr(s.Value))
		d.emitted = true
		return
	}

	if b, ok := s.Value.(*ast.BinaryExpression); ok && ast.IsArithmetic(b.Op) && !b.Parens {
		if id, ok := b.Left.(*ast.Identifier); ok && id.Name == s.Name {
			g.emit(depth, "%s %s= %s;", s.Name, cppOperator(b.Op), g.operand(b.Right, g.typeOf(b) == semantic.String))
			return
		}
	}

	value := g.expr(s.Value)
	if value == s.Name {
		// x = int(x) after a numeric read is already satisfied by cin
		return
	}
	g.emit(depth, "%s = %s;", s.Name, value)
}

// inputRead matches input(p), int(input(p)) and float(input(p)) and
// returns the prompt, which is nil when absent
func inputRead(e ast.Expr) (ast.Expr, bool) {
	call, ok := e.(*ast.FunctionCall)
	if !ok {
		return nil, false
	}
	if (call.Name == "int" || call.Name == "float") && len(call.Args) == 1 {
		inner, ok := call.Args[0].(*ast.FunctionCall)
		if !ok {
			return nil, false
		}
		call = inner
	}
	if call.Name != "input" {
		return nil, false
	}
	if len(call.Args) == 0 {
		return nil, true
	}
	return call.Args[0], true
}

// print renders print(...) as a cout chain. Arguments are separated by a
// space, string concatenations become separate operands, and end= is
// honoured.
func (g *generator) print(p *ast.PrintStatement, depth int) {
	var (
		operands []string
		// index of a trailing string literal operand, or -1
		open = -1
	)
	literal := func(text string) {
		if text == "" {
			return
		}
		if open >= 0 {
			operands[open] = operands[open][:len(operands[open])-1] + text + `"`
			return
		}
		operands = append(operands, `"`+text+`"`)
		open = len(operands) - 1
	}
	value := func(s string) {
		operands = append(operands, s)
		open = -1
	}

	for i, arg := range p.Args {
		if i > 0 {
			literal(" ")
		}
		for _, leaf := range g.concatLeaves(arg) {
			switch leaf := leaf.(type) {
			case *ast.StringLiteral:
				literal(leaf.Value)
			case *ast.BinaryExpression:
				value("(" + g.expr(leaf) + ")")
			default:
				value(g.expr(leaf))
			}
		}
	}

	switch {
	case p.End == nil || p.End.Value == `\n`:
		value("endl")
	default:
		literal(p.End.Value)
	}

	if len(operands) == 0 {
		return
	}
	g.emit(depth, "cout << %s;", strings.Join(operands, " << "))
}

// concatLeaves splits a string concatenation chain into its operands
func (g *generator) concatLeaves(e ast.Expr) []ast.Expr {
	b, ok := e.(*ast.BinaryExpression)
	if !ok || b.Op != "+" || b.Parens || g.typeOf(b) != semantic.String {
		return []ast.Expr{e}
	}
	return append(g.concatLeaves(b.Left), b.Right)
}

// forLoop renders a range loop as a counting for loop. range evaluates its
// bound once and rebinds the variable on each pass. A separate counter is
// used when the body assigns the variable or the variable outlives the
// loop. A bound the body may change is copied first.
func (g *generator) forLoop(loop *ast.ForLoop, depth int) {
	if loop.Shape != ast.ForRange {
		g.fail(loop, "for loop without range()")
		return
	}

	start := "0"
	if loop.Start != nil {
		start = g.expr(loop.Start)
	}
	step := 1
	if lit, ok := loop.Step.(*ast.NumberLiteral); ok {
		if k, err := strconv.Atoi(lit.Value); err == nil && k != 0 {
			step = k
		}
	}

	d, _ := g.lookup(loop.Var)
	local := d != nil && d.site == ast.Node(loop) && !d.hoisted && !d.global && !d.emitted
	counter := loop.Var
	if !local || ast.Assigns(loop.Body, loop.Var) {
		counter = g.unused(loop.Var + "_idx")
	}

	cmp, update := "<", counter+"++"
	switch {
	case step == -1:
		cmp, update = ">", counter+"--"
	case step < 0:
		cmp, update = ">", fmt.Sprintf("%s -= %d", counter, -step)
	case step > 1:
		update = fmt.Sprintf("%s += %d", counter, step)
	}

	stop := g.expr(loop.Stop)
	if g.boundMayChange(loop) {
		end := g.unused(loop.Var + "_end")
		g.names[end] = true
		g.emit(depth, "int %s = %s;", end, stop)
		stop = end
	}

	g.emit(depth, "for (int %s = %s; %s %s %s; %s) {", counter, start, counter, cmp, stop, update)
	if counter != loop.Var {
		if local {
			g.emit(depth+1, "int %s = %s;", loop.Var, counter)
		} else {
			g.emit(depth+1, "%s = %s;", loop.Var, counter)
		}
	}
	g.stmts(ast.Stmts(loop.Body), depth+1)
	g.emit(depth, "}")
}

// boundMayChange reports whether re-evaluating the stop of loop on every
// pass could give a different value or repeat a call
func (g *generator) boundMayChange(loop *ast.ForLoop) bool {
	callsUser := false
	ast.Inspect(loop.Body, func(n ast.Node) bool {
		if c, ok := n.(*ast.FunctionCall); ok {
			if _, user := g.returns[c.Name]; user {
				callsUser = true
			}
		}
		return !callsUser
	})

	changes := false
	ast.Inspect(loop.Stop, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionCall:
			changes = true
		case *ast.Identifier:
			_, global := g.globals[n.Name]
			changes = ast.Assigns(loop.Body, n.Name) || (global && callsUser)
		}
		return !changes
	})
	return changes
}

func cppOperator(op string) string {
	if op == "//" {
		return "/"
	}
	return op
}

// expr renders an expression. A binary operand on the right, or one the
// source parenthesized, is wrapped in parentheses.
func (g *generator) expr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.NumberLiteral:
		return e.Value
	case *ast.StringLiteral:
		return `"` + e.Value + `"`
	case *ast.Identifier:
		return e.Name
	case *ast.FunctionCall:
		return g.call(e)
	case *ast.BinaryExpression:
		concat := e.Op == "+" && g.typeOf(e) == semantic.String
		left := g.expr(e.Left)
		switch {
		case concat:
			left = g.stringOperand(e.Left, left)
		case e.Op == "/" && g.typeOf(e.Left) == semantic.Int && g.typeOf(e.Right) == semantic.Int:
			// true division
			if b, ok := e.Left.(*ast.BinaryExpression); ok && b.Parens {
				left = "(double)" + left
			} else {
				left = "(double)(" + left + ")"
			}
		}
		s := left + " " + cppOperator(e.Op) + " " + g.operand(e.Right, concat)
		if e.Parens {
			return "(" + s + ")"
		}
		return s
	default:
		g.fail(e, "%s cannot be used as a value in C++", e.Kind())
		return ""
	}
}

// operand renders the right side of a binary expression. Inside a string
// concatenation numbers are converted with to_string.
func (g *generator) operand(e ast.Expr, concat bool) string {
	var s string
	if b, ok := e.(*ast.BinaryExpression); ok && !b.Parens {
		s = "(" + g.expr(e) + ")"
	} else {
		s = g.expr(e)
	}
	if concat {
		return g.stringOperand(e, s)
	}
	return s
}

func (g *generator) stringOperand(e ast.Expr, rendered string) string {
	if g.typeOf(e).IsNumeric() {
		return "to_string(" + rendered + ")"
	}
	return rendered
}

// call renders builtin conversions and user function calls
func (g *generator) call(c *ast.FunctionCall) string {
	if c.Name == "input" {
		g.fail(c, "input() is only supported as the value of an assignment")
		return ""
	}

	var (
		arg     string
		argType semantic.Type
	)
	if len(c.Args) == 1 {
		arg = g.expr(c.Args[0])
		argType = g.typeOf(c.Args[0])
	}

	switch c.Name {
	case "int":
		switch argType {
		case semantic.Int:
			return arg
		case semantic.String:
			return "stoi(" + arg + ")"
		}
		return "(int)(" + arg + ")"
	case "float":
		switch argType {
		case semantic.Double, semantic.Float:
			return arg
		case semantic.String:
			return "stod(" + arg + ")"
		}
		return "(double)(" + arg + ")"
	case "str":
		if argType == semantic.String {
			return arg
		}
		return "to_string(" + arg + ")"
	}
	return c.Name + "()"
}
