// File: generator.go
// Title: Python Generator
// Description: Renders a tree parsed from the C++ subset as Python. Type
//              annotations are erased, cout/cin chains become print and
//              input calls, and counting for loops become range loops.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package python

import (
	"fmt"
	"strings"

	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
)

// Options controls the generated Python
type Options struct {
	// IndentWidth is the number of spaces per level; 4 when zero
	IndentWidth int
	// UseMain keeps main as a function called under a __main__ guard
	// instead of emitting its body at module level
	UseMain bool
}

// Generate renders prog, which must have passed cpp.Analyze without errors
func Generate(prog *ast.Program, opts Options) (string, error) {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 4
	}
	g := &generator{
		opts:   opts,
		indent: strings.Repeat(" ", opts.IndentWidth),
		scope:  semantic.NewScope(),
	}
	g.program(prog)
	if g.err != nil {
		return "", g.err
	}
	return g.out.String(), nil
}

type generator struct {
	opts   Options
	indent string
	out    strings.Builder
	lines  int
	// declared C++ types, needed for cin conversions and integer division
	scope *semantic.Scope
	prog  *ast.Program
	// enclosing function, nil at module level
	fn  *ast.FunctionDefinition
	err error
}

func (g *generator) emit(depth int, format string, args ...interface{}) {
	for i := 0; i < depth; i++ {
		g.out.WriteString(g.indent)
	}
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteByte('\n')
	g.lines++
}

func (g *generator) blank() {
	if g.out.Len() > 0 && !strings.HasSuffix(g.out.String(), "\n\n") {
		g.out.WriteByte('\n')
	}
}

func (g *generator) fail(n ast.Node, format string, args ...interface{}) {
	if g.err == nil {
		g.err = fmt.Errorf("python generator: line %d: %s", n.Pos().Line, fmt.Sprintf(format, args...))
	}
}

func (g *generator) program(prog *ast.Program) {
	g.prog = prog
	var main *ast.FunctionDefinition
	for _, fn := range prog.Body {
		if def, ok := fn.(*ast.FunctionDefinition); ok {
			g.scope.Declare(&semantic.Symbol{Name: def.Name, Kind: semantic.Func, Type: semantic.ParseType(def.ReturnType)})
		}
	}

	afterDef := false
	for i := 0; i < len(prog.Body); i++ {
		s := prog.Body[i]
		def, isDef := s.(*ast.FunctionDefinition)
		switch {
		case isDef && def.Body == nil:
			// prototype
		case isDef && def.Name == "main":
			main = def
		case isDef:
			g.blank()
			g.function(def, 0)
			afterDef = true
		default:
			if afterDef {
				g.blank()
				afterDef = false
			}
			i += g.stmtAt(prog.Body, i, 0)
		}
	}

	// main runs once every definition exists
	switch {
	case main == nil:
	case g.opts.UseMain:
		g.blank()
		g.function(main, 0)
		g.blank()
		g.emit(0, `if __name__ == "__main__":`)
		g.emit(1, "main()")
	default:
		if afterDef {
			g.blank()
		}
		g.functionBody(main, 0)
	}
}

func (g *generator) function(fn *ast.FunctionDefinition, depth int) {
	g.emit(depth, "def %s():", fn.Name)
	start := g.lines
	g.functionBody(fn, depth+1)
	if g.lines == start {
		g.emit(depth+1, "pass")
	}
}

func (g *generator) functionBody(fn *ast.FunctionDefinition, depth int) {
	outer := g.fn
	g.fn = fn
	g.scope.Enter()
	if fn.Body != nil {
		body := fn.Body.Stmts
		if n := len(body); fn.Name == "main" && n > 0 {
			if _, ok := body[n-1].(*ast.ReturnStatement); ok {
				body = body[:n-1]
			}
		}
		g.stmts(body, depth)
	}
	g.scope.Exit()
	g.fn = outer
}

// suite renders the body of a compound statement, emitting pass when
// nothing else was produced
func (g *generator) suite(s ast.Stmt, depth int) {
	start := g.lines
	g.scope.Enter()
	g.stmts(ast.Stmts(s), depth)
	g.scope.Exit()
	if g.lines == start {
		g.emit(depth, "pass")
	}
}

func (g *generator) stmts(list []ast.Stmt, depth int) {
	for i := 0; i < len(list); i++ {
		i += g.stmtAt(list, i, depth)
	}
}

// stmtAt renders list[i] and returns how many following statements it
// consumed as well
func (g *generator) stmtAt(list []ast.Stmt, i int, depth int) int {
	if out, ok := list[i].(*ast.IOStatement); ok && out.Op == ast.Output && i+1 < len(list) {
		if in, ok := list[i+1].(*ast.IOStatement); ok && in.Op == ast.Input {
			if prompt, ok := promptOf(out); ok {
				g.read(in, prompt, depth)
				return 1
			}
		}
	}
	g.stmt(list[i], depth)
	return 0
}

func (g *generator) stmt(s ast.Stmt, depth int) {
	switch s := s.(type) {
	case *ast.FunctionDefinition:
		g.function(s, depth)
	case *ast.VariableDeclaration:
		g.scope.Declare(&semantic.Symbol{Name: s.Name, Type: semantic.ParseType(s.Type)})
		if s.Init != nil {
			g.assign(s.Name, s.Init, depth)
		}
	case *ast.Assignment:
		g.assign(s.Name, s.Value, depth)
	case *ast.IfStatement:
		links, final := s.Branches()
		for i, link := range links {
			keyword := "elif"
			if i == 0 {
				keyword = "if"
			}
			g.emit(depth, "%s %s:", keyword, g.expr(link.Cond))
			g.suite(link.Then, depth+1)
		}
		if final != nil {
			g.emit(depth, "else:")
			g.suite(final, depth+1)
		}
	case *ast.WhileLoop:
		g.emit(depth, "while %s:", g.expr(s.Cond))
		g.suite(s.Body, depth+1)
	case *ast.ForLoop:
		g.forLoop(s, depth)
	case *ast.IOStatement:
		if s.Op == ast.Input {
			g.read(s, "", depth)
		} else {
			g.print(s, depth)
		}
	case *ast.ReturnStatement:
		switch {
		case g.fn != nil && g.fn.Name == "main":
			// main's status has no Python counterpart. Module level code
			// cannot return, so a flattened main drops early returns.
			if g.opts.UseMain {
				g.emit(depth, "return")
			}
		case s.Value == nil:
			g.emit(depth, "return")
		default:
			g.emit(depth, "return %s", g.expr(s.Value))
		}
	case *ast.Block:
		g.scope.Enter()
		g.stmts(s.Stmts, depth)
		g.scope.Exit()
	case *ast.Increment:
		g.emit(depth, "%s %s= 1", s.Name, s.Op[:1])
	case *ast.EmptyStatement:
	case ast.Expr:
		g.emit(depth, "%s", g.expr(s))
	default:
		g.fail(s, "unexpected %s", s.Kind())
	}
}

// assign renders name = value, using the augmented form when value is
// name op e
func (g *generator) assign(name string, value ast.Expr, depth int) {
	if b, ok := value.(*ast.BinaryExpression); ok && ast.IsArithmetic(b.Op) && !b.Parens {
		if id, ok := b.Left.(*ast.Identifier); ok && id.Name == name {
			g.emit(depth, "%s %s= %s", name, g.operator(b), g.operand(b.Right))
			return
		}
	}
	g.emit(depth, "%s = %s", name, g.expr(value))
}

// promptOf returns the concatenated text of a cout made only of string
// literals, which can serve as an input() prompt
func promptOf(out *ast.IOStatement) (string, bool) {
	var b strings.Builder
	for _, e := range out.Exprs {
		lit, ok := e.(*ast.StringLiteral)
		if !ok {
			return "", false
		}
		b.WriteString(lit.Value)
	}
	return b.String(), len(out.Exprs) > 0
}

// read renders cin >> a >> b as one input() assignment per target. The
// prompt goes to the first read.
func (g *generator) read(in *ast.IOStatement, prompt string, depth int) {
	for i, e := range in.Exprs {
		id, ok := e.(*ast.Identifier)
		if !ok {
			g.fail(e, "cin target is not a variable")
			return
		}
		call := "input()"
		if i == 0 && prompt != "" {
			call = fmt.Sprintf(`input("%s")`, prompt)
		}
		switch g.typeOf(id) {
		case semantic.Int:
			call = "int(" + call + ")"
		case semantic.Float, semantic.Double:
			call = "float(" + call + ")"
		}
		g.emit(depth, "%s = %s", id.Name, call)
	}
}

type piece struct {
	literal bool
	text    string
}

// print renders a cout chain as a single print call. Literal operands are
// merged, other operands are interpolated, and a trailing newline becomes
// print's own line ending.
func (g *generator) print(out *ast.IOStatement, depth int) {
	var pieces []piece
	for _, e := range out.Exprs {
		if b, ok := e.(*ast.BinaryExpression); ok && b.Op == "=" {
			id, ok := b.Left.(*ast.Identifier)
			if !ok {
				g.fail(b, "assignment target is not a variable")
				return
			}
			g.assign(id.Name, b.Right, depth)
			e = id
		}
		if lit, ok := e.(*ast.StringLiteral); ok {
			if n := len(pieces); n > 0 && pieces[n-1].literal {
				pieces[n-1].text += lit.Value
			} else {
				pieces = append(pieces, piece{literal: true, text: lit.Value})
			}
			continue
		}
		pieces = append(pieces, piece{text: g.expr(e)})
	}

	newline := false
	if n := len(pieces); n > 0 && pieces[n-1].literal && endsWithNewline(pieces[n-1].text) {
		newline = true
		pieces[n-1].text = strings.TrimSuffix(pieces[n-1].text, `\n`)
		if pieces[n-1].text == "" {
			pieces = pieces[:n-1]
		}
	}

	var arg string
	switch {
	case len(pieces) == 0:
	case len(pieces) == 1 && pieces[0].literal:
		arg = `"` + pieces[0].text + `"`
	case len(pieces) == 1:
		arg = pieces[0].text
	default:
		var b strings.Builder
		b.WriteString(`f"`)
		for _, p := range pieces {
			if p.literal {
				b.WriteString(strings.NewReplacer("{", "{{", "}", "}}").Replace(p.text))
			} else {
				b.WriteString("{" + p.text + "}")
			}
		}
		b.WriteString(`"`)
		arg = b.String()
	}

	switch {
	case newline:
		g.emit(depth, "print(%s)", arg)
	case arg == "":
		g.emit(depth, `print(end="")`)
	default:
		g.emit(depth, `print(%s, end="")`, arg)
	}
}

// endsWithNewline reports whether the escaped text ends in a \n escape
// rather than an escaped backslash followed by n
func endsWithNewline(text string) bool {
	if !strings.HasSuffix(text, `\n`) {
		return false
	}
	slashes := 0
	for i := len(text) - 2; i >= 0 && text[i] == '\\'; i-- {
		slashes++
	}
	return slashes%2 == 1
}

func (g *generator) forLoop(loop *ast.ForLoop, depth int) {
	if r, ok := g.rangeOf(loop); ok {
		g.emit(depth, "for %s in range(%s):", r.name, strings.Join(r.args, ", "))
		g.suite(loop.Body, depth+1)
		return
	}

	// while fallback: init; while cond: body; post
	g.scope.Enter()
	if loop.Init != nil {
		g.stmt(loop.Init, depth)
	}
	cond := "True"
	if loop.Cond != nil {
		cond = g.expr(loop.Cond)
	}
	g.emit(depth, "while %s:", cond)
	body := append([]ast.Stmt{}, ast.Stmts(loop.Body)...)
	if loop.Post != nil {
		body = append(body, loop.Post)
	}
	g.suite(&ast.Block{At: loop.At, Stmts: body}, depth+1)
	g.scope.Exit()
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
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = g.expr(arg)
		}
		return e.Name + "(" + strings.Join(args, ", ") + ")"
	case *ast.BinaryExpression:
		s := g.expr(e.Left) + " " + g.operator(e) + " " + g.operand(e.Right)
		if e.Parens {
			return "(" + s + ")"
		}
		return s
	default:
		g.fail(e, "%s cannot be used as a value in Python", e.Kind())
		return ""
	}
}

func (g *generator) operand(e ast.Expr) string {
	if b, ok := e.(*ast.BinaryExpression); ok && !b.Parens {
		return "(" + g.expr(e) + ")"
	}
	return g.expr(e)
}

// operator maps C++ operators to Python; "/" on two integers floors
func (g *generator) operator(b *ast.BinaryExpression) string {
	if b.Op == "/" && g.typeOf(b.Left) == semantic.Int && g.typeOf(b.Right) == semantic.Int {
		return "//"
	}
	return b.Op
}

// typeOf infers the C++ type of e from literals and declarations
func (g *generator) typeOf(e ast.Expr) semantic.Type {
	switch e := e.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat() {
			return semantic.Double
		}
		return semantic.Int
	case *ast.StringLiteral:
		return semantic.String
	case *ast.Identifier:
		if sym, ok := g.scope.Lookup(e.Name); ok && sym.Kind == semantic.Variable {
			return sym.Type
		}
	case *ast.FunctionCall:
		if sym, ok := g.scope.Lookup(e.Name); ok && sym.Kind == semantic.Func {
			return sym.Type
		}
	case *ast.BinaryExpression:
		if ast.IsComparison(e.Op) {
			return semantic.Bool
		}
		return semantic.ArithmeticResult(g.typeOf(e.Left), g.typeOf(e.Right))
	}
	return semantic.Unknown
}
