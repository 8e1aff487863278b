// File: nodes.go
// Title: AST Node Definitions
// Description: Node variants of the shared tree.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"strings"

	"github.com/Arking-xx/College-Thesis/internal/token"
)

// Kind is the discriminant of a node variant
type Kind int

const (
	KindProgram Kind = iota
	KindFunctionDefinition
	KindVariableDeclaration
	KindAssignment
	KindBinaryExpression
	KindIdentifier
	KindNumberLiteral
	KindStringLiteral
	KindIfStatement
	KindWhileLoop
	KindForLoop
	KindIOStatement
	KindPrintStatement
	KindReturnStatement
	KindBlock
	KindIncrement
	KindFunctionCall
	KindEmptyStatement
)

var kindNames = [...]string{
	KindProgram:             "Program",
	KindFunctionDefinition:  "FunctionDefinition",
	KindVariableDeclaration: "VariableDeclaration",
	KindAssignment:          "Assignment",
	KindBinaryExpression:    "BinaryExpression",
	KindIdentifier:          "Identifier",
	KindNumberLiteral:       "NumberLiteral",
	KindStringLiteral:       "StringLiteral",
	KindIfStatement:         "IfStatement",
	KindWhileLoop:           "WhileLoop",
	KindForLoop:             "ForLoop",
	KindIOStatement:         "IOStatement",
	KindPrintStatement:      "PrintStatement",
	KindReturnStatement:     "ReturnStatement",
	KindBlock:               "Block",
	KindIncrement:           "Increment",
	KindFunctionCall:        "FunctionCall",
	KindEmptyStatement:      "EmptyStatement",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is implemented by every variant
type Node interface {
	Kind() Kind
	Pos() token.Pos
}

// Stmt is a node that can appear in a statement list
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that produces a value
type Expr interface {
	Stmt
	exprNode()
}

// Program is the root of a parsed source file
type Program struct {
	Body []Stmt
}

// FunctionDefinition declares a parameterless function. ReturnType is the
// declared C++ type; it is empty for Python definitions. Body is nil for a
// C++ prototype.
type FunctionDefinition struct {
	At         token.Pos
	ReturnType string
	Name       string
	Body       *Block
}

// VariableDeclaration is a typed declaration with an optional initializer
type VariableDeclaration struct {
	At   token.Pos
	Type string
	Name string
	Init Expr
}

// Assignment stores Value into the variable Name
type Assignment struct {
	At    token.Pos
	Name  string
	Value Expr
}

// BinaryExpression applies Op to two operands. Chains are left-nested in
// source order; there is no precedence. Parens records that the source
// wrapped the expression in parentheses.
type BinaryExpression struct {
	At     token.Pos
	Op     string
	Left   Expr
	Right  Expr
	Parens bool
}

// Identifier references a variable or function
type Identifier struct {
	At   token.Pos
	Name string
}

// NumberLiteral holds the source text of a number, including a leading
// minus sign when one was written directly before it
type NumberLiteral struct {
	At    token.Pos
	Value string
}

// StringLiteral holds the text between the quotes, escaped for a double
// quoted literal in either target
type StringLiteral struct {
	At    token.Pos
	Value string
}

// IfStatement is one link of an if/elif/else chain. Else is nil, another
// *IfStatement for elif/else-if, or the final branch.
type IfStatement struct {
	At   token.Pos
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileLoop repeats Body while Cond holds
type WhileLoop struct {
	At   token.Pos
	Cond Expr
	Body Stmt
}

// ForShape selects which fields of a ForLoop are populated
type ForShape int

const (
	// ForClause is for (Init; Cond; Post)
	ForClause ForShape = iota
	// ForRange is for Var in range(Start, Stop, Step)
	ForRange
)

// ForLoop covers both loop shapes. For ForClause, Init, Cond and Post are
// used and each may be nil. For ForRange, Var and Stop are always set;
// Start and Step are nil when omitted.
type ForLoop struct {
	At    token.Pos
	Shape ForShape

	Init Stmt
	Cond Expr
	Post Stmt

	Var   string
	Start Expr
	Stop  Expr
	Step  Expr

	Body Stmt
}

// IOOp is the direction of a stream statement
type IOOp int

const (
	Output IOOp = iota
	Input
)

// Stream returns the stream name used in C++ source
func (op IOOp) Stream() string {
	if op == Input {
		return "cin"
	}
	return "cout"
}

// IOStatement is a cout << ... or cin >> ... chain
type IOStatement struct {
	At    token.Pos
	Op    IOOp
	Exprs []Expr
}

// PrintStatement is a Python print call. End is nil unless end= was given.
type PrintStatement struct {
	At   token.Pos
	Args []Expr
	End  *StringLiteral
}

// ReturnStatement returns Value, which is nil for a bare return
type ReturnStatement struct {
	At    token.Pos
	Value Expr
}

// Block is a braced or indented statement list
type Block struct {
	At    token.Pos
	Stmts []Stmt
}

// Increment is x++ or x--
type Increment struct {
	At   token.Pos
	Name string
	Op   string
}

// FunctionCall calls Name with Args
type FunctionCall struct {
	At   token.Pos
	Name string
	Args []Expr
}

// EmptyStatement is a lone semicolon, pass, or a dropped directive
type EmptyStatement struct {
	At token.Pos
}

func (n *Program) Kind() Kind             { return KindProgram }
func (n *FunctionDefinition) Kind() Kind  { return KindFunctionDefinition }
func (n *VariableDeclaration) Kind() Kind { return KindVariableDeclaration }
func (n *Assignment) Kind() Kind          { return KindAssignment }
func (n *BinaryExpression) Kind() Kind    { return KindBinaryExpression }
func (n *Identifier) Kind() Kind          { return KindIdentifier }
func (n *NumberLiteral) Kind() Kind       { return KindNumberLiteral }
func (n *StringLiteral) Kind() Kind       { return KindStringLiteral }
func (n *IfStatement) Kind() Kind         { return KindIfStatement }
func (n *WhileLoop) Kind() Kind           { return KindWhileLoop }
func (n *ForLoop) Kind() Kind             { return KindForLoop }
func (n *IOStatement) Kind() Kind         { return KindIOStatement }
func (n *PrintStatement) Kind() Kind      { return KindPrintStatement }
func (n *ReturnStatement) Kind() Kind     { return KindReturnStatement }
func (n *Block) Kind() Kind               { return KindBlock }
func (n *Increment) Kind() Kind           { return KindIncrement }
func (n *FunctionCall) Kind() Kind        { return KindFunctionCall }
func (n *EmptyStatement) Kind() Kind      { return KindEmptyStatement }

// Pos of a program is the position of its first statement
func (n *Program) Pos() token.Pos {
	if len(n.Body) > 0 {
		return n.Body[0].Pos()
	}
	return token.Pos{Line: 1, Column: 1}
}
func (n *FunctionDefinition) Pos() token.Pos  { return n.At }
func (n *VariableDeclaration) Pos() token.Pos { return n.At }
func (n *Assignment) Pos() token.Pos          { return n.At }
func (n *BinaryExpression) Pos() token.Pos    { return n.At }
func (n *Identifier) Pos() token.Pos          { return n.At }
func (n *NumberLiteral) Pos() token.Pos       { return n.At }
func (n *StringLiteral) Pos() token.Pos       { return n.At }
func (n *IfStatement) Pos() token.Pos         { return n.At }
func (n *WhileLoop) Pos() token.Pos           { return n.At }
func (n *ForLoop) Pos() token.Pos             { return n.At }
func (n *IOStatement) Pos() token.Pos         { return n.At }
func (n *PrintStatement) Pos() token.Pos      { return n.At }
func (n *ReturnStatement) Pos() token.Pos     { return n.At }
func (n *Block) Pos() token.Pos               { return n.At }
func (n *Increment) Pos() token.Pos           { return n.At }
func (n *FunctionCall) Pos() token.Pos        { return n.At }
func (n *EmptyStatement) Pos() token.Pos      { return n.At }

func (*FunctionDefinition) stmtNode()  {}
func (*VariableDeclaration) stmtNode() {}
func (*Assignment) stmtNode()          {}
func (*BinaryExpression) stmtNode()    {}
func (*Identifier) stmtNode()          {}
func (*NumberLiteral) stmtNode()       {}
func (*StringLiteral) stmtNode()       {}
func (*IfStatement) stmtNode()         {}
func (*WhileLoop) stmtNode()           {}
func (*ForLoop) stmtNode()             {}
func (*IOStatement) stmtNode()         {}
func (*PrintStatement) stmtNode()      {}
func (*ReturnStatement) stmtNode()     {}
func (*Block) stmtNode()               {}
func (*Increment) stmtNode()           {}
func (*FunctionCall) stmtNode()        {}
func (*EmptyStatement) stmtNode()      {}

func (*BinaryExpression) exprNode() {}
func (*Identifier) exprNode()       {}
func (*NumberLiteral) exprNode()    {}
func (*StringLiteral) exprNode()    {}
func (*Increment) exprNode()        {}
func (*FunctionCall) exprNode()     {}

// IsFloat reports whether the literal has a fractional part
func (n *NumberLiteral) IsFloat() bool {
	return strings.ContainsAny(n.Value, ".eE")
}

// Branches flattens an if/elif/else chain into its conditional links and
// the trailing else branch, which is nil when absent.
func (n *IfStatement) Branches() (links []*IfStatement, final Stmt) {
	for cur := n; ; {
		links = append(links, cur)
		next, ok := cur.Else.(*IfStatement)
		if !ok {
			return links, cur.Else
		}
		cur = next
	}
}

// Stmts returns the statements of s, treating a non-block statement as a
// one-element list
func Stmts(s Stmt) []Stmt {
	switch b := s.(type) {
	case nil:
		return nil
	case *Block:
		return b.Stmts
	default:
		return []Stmt{s}
	}
}
