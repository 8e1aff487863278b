// File: walk.go
// Title: Tree Traversal
// Description: Depth-first traversal over every node variant.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import "fmt"

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for each node. Children are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			Inspect(s, f)
		}
	case *FunctionDefinition:
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *VariableDeclaration:
		inspectExpr(n.Init, f)
	case *Assignment:
		inspectExpr(n.Value, f)
	case *BinaryExpression:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *Identifier, *NumberLiteral, *StringLiteral, *Increment, *EmptyStatement:
	case *IfStatement:
		inspectExpr(n.Cond, f)
		inspectStmt(n.Then, f)
		inspectStmt(n.Else, f)
	case *WhileLoop:
		inspectExpr(n.Cond, f)
		inspectStmt(n.Body, f)
	case *ForLoop:
		inspectStmt(n.Init, f)
		inspectExpr(n.Cond, f)
		inspectStmt(n.Post, f)
		inspectExpr(n.Start, f)
		inspectExpr(n.Stop, f)
		inspectExpr(n.Step, f)
		inspectStmt(n.Body, f)
	case *IOStatement:
		for _, e := range n.Exprs {
			Inspect(e, f)
		}
	case *PrintStatement:
		for _, e := range n.Args {
			Inspect(e, f)
		}
		if n.End != nil {
			Inspect(n.End, f)
		}
	case *ReturnStatement:
		inspectExpr(n.Value, f)
	case *Block:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *FunctionCall:
		for _, e := range n.Args {
			Inspect(e, f)
		}
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node %T", n))
	}
}

// Assigns reports whether any statement under s writes to name. Reads
// through cin and rebinding by a range loop count as writes.
func Assigns(s Stmt, name string) bool {
	found := false
	inspectStmt(s, func(n Node) bool {
		switch n := n.(type) {
		case *Assignment:
			found = found || n.Name == name
		case *VariableDeclaration:
			found = found || n.Name == name
		case *Increment:
			found = found || n.Name == name
		case *ForLoop:
			found = found || (n.Shape == ForRange && n.Var == name)
		case *BinaryExpression:
			if id, ok := n.Left.(*Identifier); ok && n.Op == "=" && id.Name == name {
				found = true
			}
		case *IOStatement:
			if n.Op == Input {
				for _, e := range n.Exprs {
					if id, ok := e.(*Identifier); ok && id.Name == name {
						found = true
					}
				}
			}
		}
		return !found
	})
	return found
}

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectStmt(s Stmt, f func(Node) bool) {
	if s != nil {
		Inspect(s, f)
	}
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *StringLiteral:
		return v == nil
	case *Program:
		return v == nil
	}
	return false
}
