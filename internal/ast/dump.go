// File: dump.go
// Title: Tree Dump
// Description: Converts a tree into plain maps for JSON or YAML output.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import "fmt"

// ToMap converts n into nested maps and slices keyed by field name. Every
// map carries a "kind" entry with the variant name. Nil children are omitted.
func ToMap(n Node) map[string]interface{} {
	if isNil(n) {
		return nil
	}

	m := map[string]interface{}{"kind": n.Kind().String()}
	if p := n.Pos(); p.IsValid() {
		m["pos"] = p.String()
	}
	put := func(key string, child Node) {
		if !isNil(child) {
			m[key] = ToMap(child)
		}
	}

	switch n := n.(type) {
	case *Program:
		m["body"] = stmtList(n.Body)
	case *FunctionDefinition:
		if n.ReturnType != "" {
			m["return_type"] = n.ReturnType
		}
		m["name"] = n.Name
		if n.Body != nil {
			put("body", n.Body)
		}
	case *VariableDeclaration:
		m["type"] = n.Type
		m["name"] = n.Name
		if n.Init != nil {
			put("init", n.Init)
		}
	case *Assignment:
		m["name"] = n.Name
		put("value", n.Value)
	case *BinaryExpression:
		m["op"] = n.Op
		if n.Parens {
			m["parens"] = true
		}
		put("left", n.Left)
		put("right", n.Right)
	case *Identifier:
		m["name"] = n.Name
	case *NumberLiteral:
		m["value"] = n.Value
	case *StringLiteral:
		m["value"] = n.Value
	case *IfStatement:
		put("cond", n.Cond)
		put("then", n.Then)
		if n.Else != nil {
			put("else", n.Else)
		}
	case *WhileLoop:
		put("cond", n.Cond)
		put("body", n.Body)
	case *ForLoop:
		if n.Shape == ForRange {
			m["shape"] = "range"
			m["var"] = n.Var
			if n.Start != nil {
				put("start", n.Start)
			}
			put("stop", n.Stop)
			if n.Step != nil {
				put("step", n.Step)
			}
		} else {
			m["shape"] = "clause"
			if n.Init != nil {
				put("init", n.Init)
			}
			if n.Cond != nil {
				put("cond", n.Cond)
			}
			if n.Post != nil {
				put("post", n.Post)
			}
		}
		put("body", n.Body)
	case *IOStatement:
		m["stream"] = n.Op.Stream()
		m["exprs"] = exprList(n.Exprs)
	case *PrintStatement:
		m["args"] = exprList(n.Args)
		if n.End != nil {
			put("end", n.End)
		}
	case *ReturnStatement:
		if n.Value != nil {
			put("value", n.Value)
		}
	case *Block:
		m["stmts"] = stmtList(n.Stmts)
	case *Increment:
		m["name"] = n.Name
		m["op"] = n.Op
	case *FunctionCall:
		m["name"] = n.Name
		m["args"] = exprList(n.Args)
	case *EmptyStatement:
	default:
		panic(fmt.Sprintf("ast.ToMap: unexpected node %T", n))
	}
	return m
}

func stmtList(stmts []Stmt) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, ToMap(s))
	}
	return out
}

func exprList(exprs []Expr) []interface{} {
	out := make([]interface{}, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, ToMap(e))
	}
	return out
}
