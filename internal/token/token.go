// File: token.go
// Title: Token Definitions
// Description: Token kinds, positions and the token value shared by both
//              source grammars.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import "fmt"

// Kind identifies the lexical class of a token. Each grammar emits a
// closed subset of these kinds.
type Kind int

const (
	EOF Kind = iota
	Whitespace
	Comment
	Directive
	Keyword
	Identifier
	Number
	String
	FString
	Insertion
	Relational
	Increment
	CompoundAssign
	Arithmetic
	Assign
	Semicolon
	Comma
	Colon
	LBrace
	RBrace
	LParen
	RParen
	Special
)

var kindNames = [...]string{
	EOF:            "EOF",
	Whitespace:     "WHITESPACE",
	Comment:        "COMMENT",
	Directive:      "DIRECTIVE",
	Keyword:        "KEYWORD",
	Identifier:     "IDENTIFIER",
	Number:         "NUMBER",
	String:         "STRING",
	FString:        "FSTRING",
	Insertion:      "INSERTION_OPERATOR",
	Relational:     "RELATIONAL_OPERATOR",
	Increment:      "INCREMENT_OPERATOR",
	CompoundAssign: "COMPOUND_ASSIGNMENT",
	Arithmetic:     "ARITHMETIC_OPERATOR",
	Assign:         "ASSIGNMENT_OPERATOR",
	Semicolon:      "SEMICOLON",
	Comma:          "COMMA",
	Colon:          "COLON",
	LBrace:         "LBRACE",
	RBrace:         "RBRACE",
	LParen:         "LPAREN",
	RParen:         "RPAREN",
	Special:        "SPECIAL_CHARACTER",
}

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pos is a location in source text. Offset is a byte offset; Line and
// Column are 1-based.
type Pos struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String formats the position as line:column
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Token is a classified lexeme
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Pos
}

// String returns a debug representation
func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Pos)
}

// Is reports whether the token has the given kind and lexeme
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme == lexeme
}

// Describe renders the token for error messages
func (t Token) Describe() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
