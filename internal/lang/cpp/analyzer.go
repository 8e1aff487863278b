// File: analyzer.go
// Title: C++ Semantic Analyzer
// Description: Scope and type checks for the C++ subset. All findings of a
//              tree are collected in one pass.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cpp

import (
	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
)

// Analyze checks prog and returns every error and warning in source order
func Analyze(prog *ast.Program) semantic.Diagnostics {
	a := &analyzer{scope: semantic.NewScope(), defined: map[string]bool{}}
	for _, s := range prog.Body {
		a.stmt(s)
	}
	return a.diags
}

type analyzer struct {
	scope *semantic.Scope
	diags semantic.Diagnostics
	// enclosing function, nil at global level
	fn *ast.FunctionDefinition
	// functions whose body has been seen
	defined map[string]bool
}

func (a *analyzer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.FunctionDefinition:
		a.function(s)
	case *ast.VariableDeclaration:
		a.declaration(s)
	case *ast.Assignment:
		a.assign(s.Name, s.Value, s)
	case *ast.IfStatement:
		links, final := s.Branches()
		for _, link := range links {
			a.condition(link.Cond, "if")
			a.stmt(link.Then)
		}
		if final != nil {
			a.stmt(final)
		}
	case *ast.WhileLoop:
		a.condition(s.Cond, "while")
		a.stmt(s.Body)
	case *ast.ForLoop:
		a.forLoop(s)
	case *ast.IOStatement:
		a.io(s)
	case *ast.ReturnStatement:
		a.ret(s)
	case *ast.Block:
		a.scope.Enter()
		for _, inner := range s.Stmts {
			a.stmt(inner)
		}
		a.scope.Exit()
	case *ast.Increment:
		a.increment(s)
	case *ast.FunctionCall:
		a.call(s)
	case *ast.EmptyStatement:
	case *ast.PrintStatement:
		a.diags.Errorf(s.At, "print statements are not part of the C++ subset")
	case ast.Expr:
		a.expr(s, false)
	default:
		a.diags.Errorf(s.Pos(), "Unsupported statement %s", s.Kind())
	}
}

func (a *analyzer) function(fn *ast.FunctionDefinition) {
	if a.fn != nil {
		a.diags.Errorf(fn.At, "Function '%s' cannot be defined inside function '%s'", fn.Name, a.fn.Name)
	}

	typ := semantic.ParseType(fn.ReturnType)
	prev, seen := a.scope.LookupLocal(fn.Name)
	switch {
	case seen && prev.Kind == semantic.Func && (fn.Body == nil || !a.defined[fn.Name]):
		// prototype and definition pair up
		if prev.Type != typ {
			a.diags.Errorf(fn.At, "Function '%s' redeclared with return type '%s', was '%s'", fn.Name, typ, prev.Type)
		}
	default:
		sym := &semantic.Symbol{Name: fn.Name, Kind: semantic.Func, Type: typ, Pos: fn.At}
		switch a.scope.Declare(sym) {
		case semantic.Redeclared:
			a.diags.Errorf(fn.At, "Function '%s' already declared in this scope", fn.Name)
		case semantic.Shadowed:
			a.diags.Warnf(fn.At, "Function '%s' shadows a declaration in an outer scope", fn.Name)
		}
	}
	if fn.Body == nil {
		return
	}
	a.defined[fn.Name] = true

	outer := a.fn
	a.fn = fn
	a.scope.Enter()
	for _, s := range fn.Body.Stmts {
		a.stmt(s)
	}
	a.scope.Exit()
	a.fn = outer
}

func (a *analyzer) declaration(d *ast.VariableDeclaration) {
	typ := semantic.ParseType(d.Type)
	if typ == semantic.Void {
		a.diags.Errorf(d.At, "Variable '%s' cannot have type 'void'", d.Name)
	}
	if d.Init != nil {
		if init := a.expr(d.Init, false); !semantic.Compatible(typ, init) {
			a.diags.Errorf(d.At, "Type mismatch in declaration of '%s': expected '%s', got '%s'", d.Name, typ, init)
		}
	}

	switch a.scope.Declare(&semantic.Symbol{Name: d.Name, Kind: semantic.Variable, Type: typ, Pos: d.At}) {
	case semantic.Redeclared:
		a.diags.Errorf(d.At, "Variable '%s' already declared in this scope", d.Name)
	case semantic.Shadowed:
		a.diags.Warnf(d.At, "Variable '%s' shadows a declaration in an outer scope", d.Name)
	}
}

// assign checks name = value and returns the variable's type
func (a *analyzer) assign(name string, value ast.Expr, at ast.Node) semantic.Type {
	valueType := a.expr(value, false)

	sym, ok := a.scope.Lookup(name)
	if !ok {
		a.diags.Errorf(at.Pos(), "Variable '%s' not declared", name)
		return semantic.Unknown
	}
	if sym.Kind == semantic.Func {
		a.diags.Errorf(at.Pos(), "Cannot assign to function '%s'", name)
		return semantic.Unknown
	}
	if !semantic.Compatible(sym.Type, valueType) {
		a.diags.Errorf(at.Pos(), "Type mismatch in assignment to '%s': expected '%s', got '%s'", name, sym.Type, valueType)
	}
	return sym.Type
}

func (a *analyzer) condition(cond ast.Expr, stmt string) {
	if t := a.expr(cond, false); t.IsKnown() && t != semantic.Bool {
		a.diags.Errorf(cond.Pos(), "Condition of %s statement must be of type 'bool', got '%s'", stmt, t)
	}
}

func (a *analyzer) forLoop(loop *ast.ForLoop) {
	if loop.Shape != ast.ForClause {
		a.diags.Errorf(loop.At, "range loops are not part of the C++ subset")
		return
	}

	a.scope.Enter()
	if loop.Init != nil {
		a.stmt(loop.Init)
	}
	if loop.Cond != nil {
		a.condition(loop.Cond, "for")
	}
	if loop.Post != nil {
		a.stmt(loop.Post)
	}
	a.stmt(loop.Body)
	a.scope.Exit()
}

func (a *analyzer) io(s *ast.IOStatement) {
	for _, e := range s.Exprs {
		if s.Op == ast.Output {
			a.expr(e, true)
			continue
		}
		id, ok := e.(*ast.Identifier)
		if !ok {
			a.diags.Errorf(e.Pos(), "cin can only read into a variable")
			continue
		}
		if sym, found := a.scope.Lookup(id.Name); !found {
			a.diags.Errorf(id.At, "Variable '%s' not declared", id.Name)
		} else if sym.Kind == semantic.Func {
			a.diags.Errorf(id.At, "cin cannot read into function '%s'", id.Name)
		}
	}
}

func (a *analyzer) ret(r *ast.ReturnStatement) {
	if a.fn == nil {
		a.diags.Errorf(r.At, "Return statement outside of a function")
		if r.Value != nil {
			a.expr(r.Value, false)
		}
		return
	}

	want := semantic.ParseType(a.fn.ReturnType)
	if r.Value == nil {
		if want != semantic.Void {
			a.diags.Errorf(r.At, "Function '%s' must return a value of type '%s'", a.fn.Name, want)
		}
		return
	}

	got := a.expr(r.Value, false)
	switch {
	case want == semantic.Void:
		a.diags.Errorf(r.At, "Void function '%s' cannot return a value", a.fn.Name)
	case !semantic.Compatible(want, got):
		a.diags.Errorf(r.At, "Type mismatch in return from '%s': expected '%s', got '%s'", a.fn.Name, want, got)
	}
}

func (a *analyzer) increment(inc *ast.Increment) semantic.Type {
	sym, ok := a.scope.Lookup(inc.Name)
	if !ok {
		a.diags.Errorf(inc.At, "Variable '%s' not declared", inc.Name)
		return semantic.Unknown
	}
	if sym.Kind == semantic.Func {
		a.diags.Errorf(inc.At, "Cannot increment function '%s'", inc.Name)
		return semantic.Unknown
	}
	if sym.Type.IsKnown() && !sym.Type.IsNumeric() {
		a.diags.Warnf(inc.At, "Increment of non-numeric variable '%s' of type '%s'", inc.Name, sym.Type)
	}
	return sym.Type
}

func (a *analyzer) call(c *ast.FunctionCall) semantic.Type {
	for _, arg := range c.Args {
		a.expr(arg, false)
	}

	sym, ok := a.scope.Lookup(c.Name)
	if !ok {
		a.diags.Errorf(c.At, "Function '%s' not declared", c.Name)
		return semantic.Unknown
	}
	if sym.Kind != semantic.Func {
		a.diags.Errorf(c.At, "'%s' is not a function", c.Name)
		return semantic.Unknown
	}
	if len(c.Args) > 0 {
		a.diags.Errorf(c.At, "Function '%s' takes no arguments", c.Name)
	}
	return sym.Type
}

// expr type-checks e. allowAssign is true only for a direct cout operand,
// the one place an assignment may be used as a value.
func (a *analyzer) expr(e ast.Expr, allowAssign bool) semantic.Type {
	switch e := e.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat() {
			return semantic.Double
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
	case *ast.Increment:
		a.diags.Errorf(e.At, "Increment of '%s' used as a value is not supported", e.Name)
		return a.increment(e)
	case *ast.FunctionCall:
		return a.call(e)
	case *ast.BinaryExpression:
		return a.binary(e, allowAssign)
	default:
		a.diags.Errorf(e.Pos(), "Unsupported expression %s", e.Kind())
		return semantic.Unknown
	}
}

func (a *analyzer) binary(b *ast.BinaryExpression, allowAssign bool) semantic.Type {
	if b.Op == "=" {
		if !allowAssign {
			a.diags.Errorf(b.At, "Assignment used as a value is only supported as a cout operand")
		}
		target, ok := b.Left.(*ast.Identifier)
		if !ok {
			a.diags.Errorf(b.At, "Left side of '=' must be a variable")
			a.expr(b.Right, false)
			return semantic.Unknown
		}
		return a.assign(target.Name, b.Right, target)
	}

	left := a.expr(b.Left, false)
	right := a.expr(b.Right, false)

	if ast.IsComparison(b.Op) {
		if !semantic.Compatible(left, right) {
			a.diags.Errorf(b.At, "Type mismatch in comparison: '%s' %s '%s'", left, b.Op, right)
		}
		return semantic.Bool
	}

	for _, t := range []semantic.Type{left, right} {
		if t.IsKnown() && !t.IsNumeric() {
			a.diags.Errorf(b.At, "Invalid operand types '%s' and '%s' for operator '%s'", left, right, b.Op)
			return semantic.Unknown
		}
	}
	if b.Op == "%" && (left == semantic.Float || left == semantic.Double || right == semantic.Float || right == semantic.Double) {
		a.diags.Errorf(b.At, "Operator '%%' requires integer operands, got '%s' and '%s'", left, right)
	}
	return semantic.ArithmeticResult(left, right)
}
