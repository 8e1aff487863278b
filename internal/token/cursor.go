// File: cursor.go
// Title: Token Cursor
// Description: Forward-only view over a token slice with bounded lookahead,
//              used by the recursive-descent parsers.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strings"
)

// Cursor walks a token slice that ends with EOF. Reads past the end keep
// returning the EOF token.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps tokens, appending an EOF token when it is missing
func NewCursor(tokens []Token) *Cursor {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		var end Pos
		if len(tokens) > 0 {
			end = advance(tokens[len(tokens)-1].Pos, tokens[len(tokens)-1].Lexeme)
		} else {
			end = Pos{Line: 1, Column: 1}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: EOF, Pos: end})
	}
	return &Cursor{tokens: tokens}
}

// Peek returns the token n positions ahead; Peek(0) is the current token
func (c *Cursor) Peek(n int) Token {
	if i := c.pos + n; i < len(c.tokens) {
		return c.tokens[i]
	}
	return c.tokens[len(c.tokens)-1]
}

// Next consumes and returns the current token
func (c *Cursor) Next() Token {
	t := c.Peek(0)
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return t
}

// Prev returns the most recently consumed token
func (c *Cursor) Prev() Token {
	if c.pos == 0 {
		return Token{Kind: EOF, Pos: Pos{Line: 1, Column: 1}}
	}
	return c.tokens[c.pos-1]
}

// AtEOF reports whether only EOF remains
func (c *Cursor) AtEOF() bool {
	return c.Peek(0).Kind == EOF
}

// Accept consumes the current token when it has kind and, if lexeme is
// not empty, that lexeme
func (c *Cursor) Accept(kind Kind, lexeme string) (Token, bool) {
	t := c.Peek(0)
	if t.Kind != kind || (lexeme != "" && t.Lexeme != lexeme) {
		return t, false
	}
	return c.Next(), true
}

// Expect is Accept that fails with a *SyntaxError
func (c *Cursor) Expect(kind Kind, lexeme string) (Token, error) {
	if t, ok := c.Accept(kind, lexeme); ok {
		return t, nil
	}
	want := kind.String()
	if lexeme != "" {
		want = fmt.Sprintf("%q", lexeme)
	}
	return Token{}, NewSyntaxError(want, c.Peek(0))
}

// SyntaxError reports a token that does not fit the grammar
type SyntaxError struct {
	Expected string
	Found    Token
}

// NewSyntaxError builds a SyntaxError for the token found where expected
// was required
func NewSyntaxError(expected string, found Token) *SyntaxError {
	return &SyntaxError{Expected: expected, Found: found}
}

// Pos returns the position of the offending token
func (e *SyntaxError) Pos() Pos { return e.Found.Pos }

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Found.Pos.Line, e.Found.Pos.Column, e.Expected, e.Found.Describe())
}

// Unquote strips the quotes of a string lexeme and returns the body escaped
// for a double quoted literal. Single quoted bodies lose the backslash in
// \' and gain one before every bare double quote.
func Unquote(lexeme string) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	quote := lexeme[0]
	body := lexeme[1 : len(lexeme)-1]
	if quote != '\'' {
		return body
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case ch == '\\' && i+1 < len(body):
			if body[i+1] == '\'' {
				b.WriteByte('\'')
			} else {
				b.WriteByte(ch)
				b.WriteByte(body[i+1])
			}
			i++
		case ch == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
