// File: range.go
// Title: Counting Loop Conversion
// Description: Recognises three-clause for loops that count with a constant
//              step toward a fixed bound and expresses them as range().
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package python

import (
	"strconv"

	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
)

type rangeLoop struct {
	name string
	args []string
}

// rangeOf converts loop when it has the shape
//
//	for (v = start; v op bound; v += k)
//
// with op one of < <= > >=, bound an integer expression the body cannot
// change, k a non-zero integer constant whose sign matches the direction of
// op, and a body that does not assign v. A v declared before the loop must
// not be read elsewhere, since range leaves it one step short of the bound.
func (g *generator) rangeOf(loop *ast.ForLoop) (rangeLoop, bool) {
	if loop.Shape != ast.ForClause || loop.Init == nil || loop.Cond == nil || loop.Post == nil {
		return rangeLoop{}, false
	}

	var (
		name  string
		start ast.Expr
	)
	switch init := loop.Init.(type) {
	case *ast.VariableDeclaration:
		if init.Init == nil || semantic.ParseType(init.Type) != semantic.Int {
			return rangeLoop{}, false
		}
		name, start = init.Name, init.Init
	case *ast.Assignment:
		if t := g.typeOf(&ast.Identifier{Name: init.Name}); t != semantic.Int {
			return rangeLoop{}, false
		}
		if g.readElsewhere(loop, init.Name) {
			return rangeLoop{}, false
		}
		name, start = init.Name, init.Value
	default:
		return rangeLoop{}, false
	}

	cond, ok := loop.Cond.(*ast.BinaryExpression)
	if !ok {
		return rangeLoop{}, false
	}
	if v, ok := cond.Left.(*ast.Identifier); !ok || v.Name != name {
		return rangeLoop{}, false
	}

	step, ok := stepOf(loop.Post, name)
	if !ok {
		return rangeLoop{}, false
	}

	var stop string
	if lit, ok := cond.Right.(*ast.NumberLiteral); ok {
		n, err := strconv.Atoi(lit.Value)
		if err != nil {
			return rangeLoop{}, false
		}
		stop = strconv.Itoa(n + boundAdjust(cond.Op))
	} else {
		if g.typeOf(cond.Right) != semantic.Int || !g.stableBound(loop, name, cond.Right) {
			return rangeLoop{}, false
		}
		switch stop = g.expr(cond.Right); boundAdjust(cond.Op) {
		case 1:
			stop += " + 1"
		case -1:
			stop += " - 1"
		}
	}

	switch cond.Op {
	case "<", "<=":
		if step <= 0 {
			return rangeLoop{}, false
		}
	case ">", ">=":
		if step >= 0 {
			return rangeLoop{}, false
		}
	default:
		return rangeLoop{}, false
	}
	if ast.Assigns(loop.Body, name) {
		return rangeLoop{}, false
	}

	g.scope.Declare(&semantic.Symbol{Name: name, Type: semantic.Int})
	from := g.expr(start)
	switch {
	case step == 1 && from == "0":
		return rangeLoop{name: name, args: []string{stop}}, true
	case step == 1:
		return rangeLoop{name: name, args: []string{from, stop}}, true
	default:
		return rangeLoop{name: name, args: []string{from, stop, strconv.Itoa(step)}}, true
	}
}

// boundAdjust turns an inclusive bound into range's exclusive stop
func boundAdjust(op string) int {
	switch op {
	case "<=":
		return 1
	case ">=":
		return -1
	}
	return 0
}

// stepOf returns k for v++, v--, v += k, v -= k and v = v +/- k
func stepOf(post ast.Stmt, name string) (int, bool) {
	switch post := post.(type) {
	case *ast.Increment:
		if post.Name != name {
			return 0, false
		}
		if post.Op == "--" {
			return -1, true
		}
		return 1, true
	case *ast.Assignment:
		b, ok := post.Value.(*ast.BinaryExpression)
		if post.Name != name || !ok || (b.Op != "+" && b.Op != "-") {
			return 0, false
		}
		if v, ok := b.Left.(*ast.Identifier); !ok || v.Name != name {
			return 0, false
		}
		lit, ok := b.Right.(*ast.NumberLiteral)
		if !ok {
			return 0, false
		}
		k, err := strconv.Atoi(lit.Value)
		if err != nil || k == 0 {
			return 0, false
		}
		if b.Op == "-" {
			k = -k
		}
		return k, true
	}
	return 0, false
}

// readElsewhere reports whether name is read outside loop in the enclosing
// function. Loops that start by assigning name do not count.
func (g *generator) readElsewhere(loop *ast.ForLoop, name string) bool {
	var root ast.Node = g.prog
	if g.fn != nil {
		root = g.fn.Body
	}
	found := false
	ast.Inspect(root, func(n ast.Node) bool {
		if found || n == ast.Node(loop) {
			return false
		}
		switch n := n.(type) {
		case *ast.ForLoop:
			if init, ok := n.Init.(*ast.Assignment); ok && init.Name == name {
				return false
			}
		case *ast.Identifier:
			found = n.Name == name
		case *ast.Increment:
			found = n.Name == name
		}
		return !found
	})
	return found
}

// stableBound reports whether bound keeps its value while loop runs. It
// may not call functions or mention v, and the body may not assign any
// variable it reads. A global is unstable when the body calls a function.
func (g *generator) stableBound(loop *ast.ForLoop, v string, bound ast.Expr) bool {
	calls := false
	ast.Inspect(loop.Body, func(n ast.Node) bool {
		_, isCall := n.(*ast.FunctionCall)
		calls = calls || isCall
		return !calls
	})

	stable := true
	ast.Inspect(bound, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionCall, *ast.Increment:
			stable = false
		case *ast.BinaryExpression:
			stable = n.Op != "="
		case *ast.Identifier:
			stable = n.Name != v && !ast.Assigns(loop.Body, n.Name) && !(calls && g.isGlobal(n.Name))
		}
		return stable
	})
	return stable
}

// isGlobal reports whether name resolves to a variable declared at file
// scope from inside the current function
func (g *generator) isGlobal(name string) bool {
	declared := func(root ast.Node) bool {
		found := false
		ast.Inspect(root, func(n ast.Node) bool {
			if d, ok := n.(*ast.VariableDeclaration); ok && d.Name == name {
				found = true
			}
			_, isDef := n.(*ast.FunctionDefinition)
			return !found && !isDef
		})
		return found
	}
	if g.fn != nil && declared(g.fn.Body) {
		return false
	}
	for _, s := range g.prog.Body {
		if declared(s) {
			return true
		}
	}
	return false
}
