// File: plan.go
// Title: Declaration Planning
// Description: Decides where and with which type each Python variable is
//              declared in the generated C++ function.
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

// placeholder type for initializers whose type cannot be synthesized
const autoType = "auto"

// decl is the declaration of one variable within a generated function
type decl struct {
	name string
	typ  string
	// first Assignment or ForLoop binding the name
	site ast.Node
	// first bound inside a nested block
	nested bool
	// declared without initializer at the top of the function
	hoisted bool
	// declared at file scope because a function reads it
	global bool
	// set once the declaration has been written
	emitted bool
}

// plan holds the declarations of one generated function
type plan struct {
	decls map[string]*decl
	order []*decl
	// variables read with input() and later passed to int() or float()
	conversions map[string]string
}

func newPlan() *plan {
	return &plan{decls: map[string]*decl{}, conversions: map[string]string{}}
}

func (p *plan) add(d *decl) {
	p.decls[d.name] = d
	p.order = append(p.order, d)
}

// refine retypes auto declarations whose value has become known
func (p *plan) refine(g *generator) {
	for _, d := range p.order {
		a, ok := d.site.(*ast.Assignment)
		if !ok || d.typ != autoType {
			continue
		}
		d.typ = g.declType(a.Name, a.Value)
		d.hoisted = d.nested && d.typ != autoType
	}
}

// planBody walks body in source order and records the first binding of
// every name
func (g *generator) planBody(body []ast.Stmt) *plan {
	p := newPlan()
	for _, s := range body {
		ast.Inspect(s, func(n ast.Node) bool {
			call, ok := n.(*ast.FunctionCall)
			if !ok || len(call.Args) != 1 {
				return true
			}
			id, ok := call.Args[0].(*ast.Identifier)
			if !ok {
				return true
			}
			if _, seen := p.conversions[id.Name]; seen {
				return true
			}
			switch call.Name {
			case "int":
				p.conversions[id.Name] = "int"
			case "float":
				p.conversions[id.Name] = "double"
			}
			return true
		})
	}

	outer := g.plan
	g.plan = p
	g.planStmts(body, body, false)
	g.plan = outer
	return p
}

func (g *generator) planStmts(stmts, all []ast.Stmt, nested bool) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *ast.Assignment:
			if _, ok := g.plan.decls[s.Name]; ok {
				continue
			}
			typ := g.declType(s.Name, s.Value)
			g.plan.add(&decl{name: s.Name, typ: typ, site: s, nested: nested, hoisted: nested && typ != autoType})
		case *ast.ForLoop:
			if _, ok := g.plan.decls[s.Var]; !ok {
				g.plan.add(&decl{name: s.Var, typ: "int", site: s, hoisted: usedOutside(all, s, s.Var)})
			}
			g.planStmts(ast.Stmts(s.Body), all, true)
		case *ast.IfStatement:
			links, final := s.Branches()
			for _, link := range links {
				g.planStmts(ast.Stmts(link.Then), all, true)
			}
			g.planStmts(ast.Stmts(final), all, true)
		case *ast.WhileLoop:
			g.planStmts(ast.Stmts(s.Body), all, true)
		case *ast.Block:
			g.planStmts(s.Stmts, all, nested)
		}
	}
}

// declType synthesizes the C++ type of a variable from its first value
func (g *generator) declType(name string, value ast.Expr) string {
	if call, ok := value.(*ast.FunctionCall); ok && call.Name == "input" {
		if conv, ok := g.plan.conversions[name]; ok {
			return conv
		}
		return "string"
	}
	if t := g.typeOf(value); t.IsKnown() && t != semantic.Void {
		return string(t)
	}
	return autoType
}

// usedOutside reports whether name occurs anywhere in stmts other than
// inside loop
func usedOutside(stmts []ast.Stmt, loop *ast.ForLoop, name string) bool {
	found := false
	for _, s := range stmts {
		ast.Inspect(s, func(n ast.Node) bool {
			if found || n == ast.Node(loop) {
				return false
			}
			switch n := n.(type) {
			case *ast.Identifier:
				found = n.Name == name
			case *ast.Assignment:
				found = n.Name == name
			case *ast.ForLoop:
				found = n.Var == name
			}
			return !found
		})
	}
	return found
}

// lookup finds the declaration of name in the current function, then at
// file scope
func (g *generator) lookup(name string) (*decl, bool) {
	if g.plan != nil {
		if d, ok := g.plan.decls[name]; ok {
			return d, true
		}
	}
	if d, ok := g.globals[name]; ok {
		return d, true
	}
	return nil, false
}

// typeOf infers the type a Python expression has in the generated C++
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
		if d, ok := g.lookup(e.Name); ok && d.typ != autoType {
			return semantic.Type(d.typ)
		}
	case *ast.FunctionCall:
		switch e.Name {
		case "input", "str":
			return semantic.String
		case "int":
			return semantic.Int
		case "float":
			return semantic.Double
		}
		if t, ok := g.returns[e.Name]; ok && t != autoType {
			return semantic.Type(t)
		}
	case *ast.BinaryExpression:
		if ast.IsComparison(e.Op) {
			return semantic.Bool
		}
		left, right := g.typeOf(e.Left), g.typeOf(e.Right)
		if e.Op == "+" && (left == semantic.String || right == semantic.String) {
			return semantic.String
		}
		if e.Op == "/" && left.IsNumeric() && right.IsNumeric() {
			return semantic.Double
		}
		return semantic.ArithmeticResult(left, right)
	}
	return semantic.Unknown
}
