// File: analyzer.go
// Title: Python Semantic Analyzer
// Description: Scope and type checks for the Python subset. Frames are
//              pushed per function only since suites do not open a scope.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package python

import (
	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
	"github.com/Arking-xx/College-Thesis/internal/token"
)

// conversion builtins and their result types
var conversions = map[string]semantic.Type{
	"int":   semantic.Int,
	"float": semantic.Float,
	"str":   semantic.String,
}

// Analyze checks prog and returns every error and warning in source order
func Analyze(prog *ast.Program) semantic.Diagnostics {
	a := &analyzer{scope: semantic.NewScope(), topLevel: map[string]bool{}}
	a.scope.Declare(&semantic.Symbol{Name: "__name__", Kind: semantic.Variable, Type: semantic.String})
	for _, s := range prog.Body {
		if fn, ok := s.(*ast.FunctionDefinition); ok {
			a.topLevel[fn.Name] = true
		}
	}
	a.stmts(prog.Body)
	return a.diags
}

type analyzer struct {
	scope *semantic.Scope
	diags semantic.Diagnostics
	fn    *ast.FunctionDefinition
	// module level def names; a function body may call a def that appears
	// later in the file
	topLevel map[string]bool
}

func (a *analyzer) stmts(list []ast.Stmt) {
	for _, s := range list {
		a.stmt(s)
	}
}

func (a *analyzer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.FunctionDefinition:
		a.function(s)
	case *ast.Assignment:
		typ := a.expr(s.Value)
		if !convertsInPlace(s.Value, s.Name) {
			a.retype(s.Name, typ, s.At)
		}
		a.bind(s.Name, typ, s.At)
	case *ast.IfStatement:
		links, final := s.Branches()
		for _, link := range links {
			a.expr(link.Cond)
			a.stmts(ast.Stmts(link.Then))
		}
		a.stmts(ast.Stmts(final))
	case *ast.WhileLoop:
		a.expr(s.Cond)
		a.stmts(ast.Stmts(s.Body))
	case *ast.ForLoop:
		a.forLoop(s)
	case *ast.PrintStatement:
		for _, arg := range s.Args {
			a.expr(arg)
		}
	case *ast.ReturnStatement:
		if a.fn == nil {
			a.diags.Errorf(s.At, "Return statement outside of a function")
		}
		if s.Value != nil {
			a.expr(s.Value)
		}
	case *ast.Block:
		a.stmts(s.Stmts)
	case *ast.Increment:
		a.increment(s)
	case *ast.FunctionCall:
		a.call(s)
	case *ast.EmptyStatement:
	case *ast.VariableDeclaration, *ast.IOStatement:
		a.diags.Errorf(s.Pos(), "%s is not part of the Python subset", s.Kind())
	case ast.Expr:
		a.expr(s)
	default:
		a.diags.Errorf(s.Pos(), "Unsupported statement %s", s.Kind())
	}
}

func (a *analyzer) function(fn *ast.FunctionDefinition) {
	if a.fn != nil {
		a.diags.Errorf(fn.At, "Nested function '%s' inside '%s' is not supported", fn.Name, a.fn.Name)
	}
	if _, exists := a.scope.LookupLocal(fn.Name); exists {
		a.diags.Errorf(fn.At, "Function '%s' already declared in this scope", fn.Name)
	} else {
		a.scope.Declare(&semantic.Symbol{Name: fn.Name, Kind: semantic.Func, Pos: fn.At})
	}

	outer := a.fn
	a.fn = fn
	a.scope.Enter()
	if fn.Body != nil {
		a.stmts(fn.Body.Stmts)
	}
	a.scope.Exit()
	a.fn = outer
}

// bind implements assignment: rebinding in the current frame, declaring a
// new local otherwise, with a warning when the local hides an outer name
func (a *analyzer) bind(name string, typ semantic.Type, at token.Pos) {
	if sym, ok := a.scope.LookupLocal(name); ok {
		if sym.Kind == semantic.Func {
			a.diags.Errorf(at, "Cannot assign to function '%s'", name)
			return
		}
		a.scope.Update(name, typ)
		return
	}
	if a.scope.Declare(&semantic.Symbol{Name: name, Kind: semantic.Variable, Type: typ, Pos: at}) == semantic.Shadowed {
		a.diags.Warnf(at, "Variable '%s' shadows a declaration in an outer scope", name)
	}
}

// retype warns when a rebinding gives a variable another type. The C++
// translation keeps the first type.
func (a *analyzer) retype(name string, typ semantic.Type, at token.Pos) {
	sym, ok := a.scope.LookupLocal(name)
	if !ok || sym.Kind != semantic.Variable || !sym.Type.IsKnown() || !typ.IsKnown() || sym.Type == typ {
		return
	}
	a.diags.Warnf(at, "Variable '%s' changes type from '%s' to '%s'", name, sym.Type, typ)
}

// convertsInPlace matches x = int(x) and x = float(x), which follow a read
// with input()
func convertsInPlace(value ast.Expr, name string) bool {
	call, ok := value.(*ast.FunctionCall)
	if !ok || (call.Name != "int" && call.Name != "float") || len(call.Args) != 1 {
		return false
	}
	id, ok := call.Args[0].(*ast.Identifier)
	return ok && id.Name == name
}

func (a *analyzer) forLoop(loop *ast.ForLoop) {
	if loop.Shape != ast.ForRange {
		a.diags.Errorf(loop.At, "for loops must iterate over range()")
		return
	}

	for _, arg := range []ast.Expr{loop.Start, loop.Stop, loop.Step} {
		if arg == nil {
			continue
		}
		switch t := a.expr(arg); {
		case t == semantic.Float || t == semantic.Double:
			a.diags.Errorf(arg.Pos(), "range() arguments must be integers, got '%s'", t)
		case t.IsKnown() && !t.IsNumeric():
			a.diags.Errorf(arg.Pos(), "range() arguments must be numeric, got '%s'", t)
		}
	}
	if loop.Step != nil {
		if lit, ok := loop.Step.(*ast.NumberLiteral); !ok || lit.IsFloat() || isZero(lit.Value) {
			a.diags.Errorf(loop.Step.Pos(), "range() step must be a non-zero integer constant")
		}
	}

	a.retype(loop.Var, semantic.Int, loop.At)
	a.bind(loop.Var, semantic.Int, loop.At)
	a.stmts(ast.Stmts(loop.Body))
}

func isZero(value string) bool {
	for _, ch := range value {
		if ch != '0' && ch != '-' {
			return false
		}
	}
	return true
}

func (a *analyzer) increment(inc *ast.Increment) {
	sym, ok := a.scope.Lookup(inc.Name)
	if !ok {
		a.diags.Errorf(inc.At, "Variable '%s' not declared", inc.Name)
		return
	}
	if sym.Type.IsKnown() && !sym.Type.IsNumeric() {
		a.diags.Warnf(inc.At, "Increment of non-numeric variable '%s' of type '%s'", inc.Name, sym.Type)
	}
}

func (a *analyzer) call(c *ast.FunctionCall) semantic.Type {
	for _, arg := range c.Args {
		a.expr(arg)
	}

	if c.Name == "input" {
		if len(c.Args) > 1 {
			a.diags.Errorf(c.At, "input() takes at most one argument")
		}
		return semantic.String
	}
	if result, ok := conversions[c.Name]; ok {
		if len(c.Args) != 1 {
			a.diags.Errorf(c.At, "%s() takes exactly one argument", c.Name)
		}
		return result
	}

	sym, ok := a.scope.Lookup(c.Name)
	switch {
	case !ok && a.fn != nil && a.topLevel[c.Name]:
	case !ok:
		a.diags.Errorf(c.At, "Function '%s' not declared", c.Name)
		return semantic.Unknown
	case sym.Kind != semantic.Func:
		a.diags.Errorf(c.At, "'%s' is not a function", c.Name)
		return semantic.Unknown
	}
	if len(c.Args) > 0 {
		a.diags.Errorf(c.At, "Function '%s' takes no arguments", c.Name)
	}
	return semantic.Unknown
}

func (a *analyzer) expr(e ast.Expr) semantic.Type {
	switch e := e.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat() {
			return semantic.Float
		}
		return semantic.Int
	case *ast.StringLiteral:
		return semantic.String
	case *ast.Identifier:
		sym, ok := a.scope.Lookup(e.Name)
		if !ok {
			a.diags.Errorf(e.At, "Variable '%s' not declared", e.Name)
			return semantic.Unknown
		}
		if sym.Kind == semantic.Func {
			a.diags.Errorf(e.At, "Function '%s' used as a value", e.Name)
			return semantic.Unknown
		}
		return sym.Type
	case *ast.FunctionCall:
		return a.call(e)
	case *ast.BinaryExpression:
		return a.binary(e)
	case *ast.Increment:
		a.diags.Errorf(e.At, "Increment operators are not part of the Python subset")
		return semantic.Unknown
	default:
		a.diags.Errorf(e.Pos(), "Unsupported expression %s", e.Kind())
		return semantic.Unknown
	}
}

// binary accepts "+" whenever either side is a string, the way f-strings
// are desugared; every other operator needs numeric operands
func (a *analyzer) binary(b *ast.BinaryExpression) semantic.Type {
	left := a.expr(b.Left)
	right := a.expr(b.Right)

	if ast.IsComparison(b.Op) {
		if !semantic.Compatible(left, right) {
			a.diags.Errorf(b.At, "Type mismatch in comparison: '%s' %s '%s'", left, b.Op, right)
		}
		return semantic.Bool
	}

	if b.Op == "+" && (left == semantic.String || right == semantic.String) {
		return semantic.String
	}
	for _, t := range []semantic.Type{left, right} {
		if t.IsKnown() && !t.IsNumeric() {
			a.diags.Errorf(b.At, "Invalid operand types '%s' and '%s' for operator '%s'", left, right, b.Op)
			return semantic.Unknown
		}
	}
	if b.Op == "/" && left.IsKnown() && right.IsKnown() {
		return semantic.Float
	}
	return semantic.ArithmeticResult(left, right)
}
