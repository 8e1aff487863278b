// File: parser.go
// Title: Python Parser
// Description: Recursive-descent parser for the Python subset. Suites are
//              recognised from token columns; f-strings are desugared into
//              "+" chains.
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
	"github.com/Arking-xx/College-Thesis/internal/token"
)

// Parser builds a tree from Python tokens. A Parser is single use.
type Parser struct {
	cur *token.Cursor
}

// NewParser creates a parser over tokens
func NewParser(tokens []token.Token) *Parser {
	return &Parser{cur: token.NewCursor(tokens)}
}

// Parse parses a complete token stream
func Parse(tokens []token.Token) (*ast.Program, error) {
	return NewParser(tokens).ParseProgram()
}

// ParseProgram parses the module. Top level statements share the column of
// the first statement.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	if p.cur.AtEOF() {
		return prog, nil
	}

	col := p.cur.Peek(0).Pos.Column
	stmts, err := p.parseStatements(col)
	if err != nil {
		return nil, err
	}
	if !p.cur.AtEOF() {
		return nil, unindentError(p.cur.Peek(0))
	}
	prog.Body = stmts
	return prog, nil
}

func unindentError(t token.Token) error {
	return token.NewSyntaxError("statement matching an outer indentation level", t)
}

// parseStatements parses a run of statements starting at column col. It
// stops before the first token left of col.
func (p *Parser) parseStatements(col int) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.cur.AtEOF() {
		t := p.cur.Peek(0)
		if t.Pos.Column < col {
			break
		}
		if t.Pos.Column > col {
			return nil, token.NewSyntaxError(fmt.Sprintf("statement at column %d (unexpected indent)", col), t)
		}
		if len(stmts) > 0 && t.Pos.Line == p.cur.Prev().Pos.Line {
			return nil, token.NewSyntaxError("end of line", t)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseSuite parses the ":" and body of a compound statement whose keyword
// is header
func (p *Parser) parseSuite(header token.Token) (*ast.Block, error) {
	colon, err := p.cur.Expect(token.Colon, ":")
	if err != nil {
		return nil, err
	}

	first := p.cur.Peek(0)
	block := &ast.Block{At: first.Pos}
	if first.Kind == token.EOF {
		return nil, token.NewSyntaxError("indented block", first)
	}

	if first.Pos.Line == colon.Pos.Line {
		if first.Kind == token.Keyword && isCompoundKeyword(first.Lexeme) {
			return nil, token.NewSyntaxError("simple statement after ':'", first)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = []ast.Stmt{stmt}
		return block, nil
	}

	if first.Pos.Column <= header.Pos.Column {
		return nil, token.NewSyntaxError("indented block", first)
	}
	if block.Stmts, err = p.parseStatements(first.Pos.Column); err != nil {
		return nil, err
	}
	return block, nil
}

func isCompoundKeyword(word string) bool {
	switch word {
	case "def", "if", "elif", "else", "while", "for":
		return true
	}
	return false
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	t := p.cur.Peek(0)

	switch t.Kind {
	case token.Keyword:
		switch t.Lexeme {
		case "def":
			return p.parseDef()
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "for":
			return p.parseFor()
		case "return":
			return p.parseReturn()
		case "pass":
			p.cur.Next()
			return &ast.EmptyStatement{At: t.Pos}, nil
		case "print":
			return p.parsePrint()
		case "input":
			return p.parseExpression()
		}
	case token.Identifier:
		switch next := p.cur.Peek(1); next.Kind {
		case token.Assign:
			p.cur.Next()
			p.cur.Next()
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &ast.Assignment{At: t.Pos, Name: t.Lexeme, Value: value}, nil
		case token.CompoundAssign:
			p.cur.Next()
			p.cur.Next()
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &ast.Assignment{
				At:   t.Pos,
				Name: t.Lexeme,
				Value: &ast.BinaryExpression{
					At:    t.Pos,
					Op:    next.Lexeme[:len(next.Lexeme)-1],
					Left:  &ast.Identifier{At: t.Pos, Name: t.Lexeme},
					Right: value,
				},
			}, nil
		}
		return p.parseExpression()
	case token.Number, token.String, token.FString, token.LParen, token.Arithmetic:
		return p.parseExpression()
	}

	return nil, token.NewSyntaxError("statement", t)
}

func (p *Parser) parseDef() (ast.Stmt, error) {
	def := p.cur.Next()
	name, err := p.cur.Expect(token.Identifier, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.Expect(token.LParen, "("); err != nil {
		return nil, err
	}
	if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite(def)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{At: def.Pos, Name: name.Lexeme, Body: body}, nil
}

// parseIf handles both if and elif; elif and else must line up with the
// keyword that opened the chain
func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.cur.Next()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseSuite(start)
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{At: start.Pos, Cond: cond, Then: then}

	next := p.cur.Peek(0)
	if next.Kind != token.Keyword || next.Pos.Column != start.Pos.Column || next.Pos.Line == p.cur.Prev().Pos.Line {
		return stmt, nil
	}
	switch next.Lexeme {
	case "elif":
		if stmt.Else, err = p.parseIf(); err != nil {
			return nil, err
		}
	case "else":
		p.cur.Next()
		body, err := p.parseSuite(next)
		if err != nil {
			return nil, err
		}
		stmt.Else = body
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := p.cur.Next()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite(start)
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{At: start.Pos, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.cur.Next()
	v, err := p.cur.Expect(token.Identifier, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.Expect(token.Keyword, "in"); err != nil {
		return nil, err
	}
	if _, err := p.cur.Expect(token.Identifier, "range"); err != nil {
		return nil, err
	}
	open, err := p.cur.Expect(token.LParen, "(")
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	if len(args) < 1 || len(args) > 3 {
		return nil, token.NewSyntaxError("1 to 3 range() arguments", open)
	}

	loop := &ast.ForLoop{At: start.Pos, Shape: ast.ForRange, Var: v.Lexeme}
	switch len(args) {
	case 1:
		loop.Stop = args[0]
	case 2:
		loop.Start, loop.Stop = args[0], args[1]
	case 3:
		loop.Start, loop.Stop, loop.Step = args[0], args[1], args[2]
	}

	if loop.Body, err = p.parseSuite(start); err != nil {
		return nil, err
	}
	return loop, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.cur.Next()
	ret := &ast.ReturnStatement{At: start.Pos}
	if next := p.cur.Peek(0); next.Kind != token.EOF && next.Pos.Line == start.Pos.Line {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ret.Value = value
	}
	return ret, nil
}

// parsePrint parses print(args[, end="..."])
func (p *Parser) parsePrint() (ast.Stmt, error) {
	start := p.cur.Next()
	if _, err := p.cur.Expect(token.LParen, "("); err != nil {
		return nil, err
	}
	stmt := &ast.PrintStatement{At: start.Pos}

	for p.cur.Peek(0).Kind != token.RParen {
		if len(stmt.Args) > 0 || stmt.End != nil {
			if _, err := p.cur.Expect(token.Comma, ","); err != nil {
				return nil, err
			}
		}
		if p.cur.Peek(0).Is(token.Identifier, "end") && p.cur.Peek(1).Kind == token.Assign {
			p.cur.Next()
			p.cur.Next()
			lit, err := p.cur.Expect(token.String, "")
			if err != nil {
				return nil, err
			}
			stmt.End = &ast.StringLiteral{At: lit.Pos, Value: token.Unquote(lit.Lexeme)}
			break
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Args = append(stmt.Args, arg)
	}

	if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseArguments parses a comma separated list after "(" including ")"
func (p *Parser) parseArguments() ([]ast.Expr, error) {
	var args []ast.Expr
	if _, ok := p.cur.Accept(token.RParen, ")"); ok {
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if _, ok := p.cur.Accept(token.Comma, ","); !ok {
			break
		}
	}
	if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func isExpressionOperator(t token.Token) bool {
	return t.Kind == token.Arithmetic || t.Kind == token.Relational
}

// parseExpression parses a flat left-associative chain without precedence
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for isExpressionOperator(p.cur.Peek(0)) {
		op := p.cur.Next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{At: left.Pos(), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	t := p.cur.Peek(0)

	switch t.Kind {
	case token.Number:
		p.cur.Next()
		return &ast.NumberLiteral{At: t.Pos, Value: t.Lexeme}, nil
	case token.String:
		p.cur.Next()
		return &ast.StringLiteral{At: t.Pos, Value: token.Unquote(t.Lexeme)}, nil
	case token.FString:
		p.cur.Next()
		return desugarFString(t)
	case token.Arithmetic:
		if t.Lexeme == "-" && p.cur.Peek(1).Kind == token.Number {
			p.cur.Next()
			num := p.cur.Next()
			return &ast.NumberLiteral{At: t.Pos, Value: "-" + num.Lexeme}, nil
		}
	case token.Identifier:
		if p.cur.Peek(1).Kind == token.LParen {
			return p.parseCall()
		}
		p.cur.Next()
		return &ast.Identifier{At: t.Pos, Name: t.Lexeme}, nil
	case token.Keyword:
		if t.Lexeme == "input" {
			return p.parseCall()
		}
	case token.LParen:
		p.cur.Next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
			return nil, err
		}
		if b, ok := expr.(*ast.BinaryExpression); ok {
			b.Parens = true
		}
		return expr, nil
	}

	return nil, token.NewSyntaxError("expression", t)
}

func (p *Parser) parseCall() (ast.Expr, error) {
	name := p.cur.Next()
	if _, err := p.cur.Expect(token.LParen, "("); err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{At: name.Pos, Name: name.Lexeme, Args: args}, nil
}

// desugarFString turns f"a{x}b" into "a" + x + "b". The chain always
// starts with a string literal, empty when the f-string opens with a
// replacement field.
func desugarFString(t token.Token) (ast.Expr, error) {
	quote := t.Lexeme[1:2]
	body := t.Lexeme[2 : len(t.Lexeme)-1]

	var (
		parts   []ast.Expr
		literal strings.Builder
		litPos  = column(t.Pos, 2)
	)
	flush := func() {
		if literal.Len() > 0 || len(parts) == 0 {
			parts = append(parts, &ast.StringLiteral{At: litPos, Value: token.Unquote(quote + literal.String() + quote)})
		}
		literal.Reset()
	}

	for i := 0; i < len(body); i++ {
		switch ch := body[i]; {
		case ch == '\\' && i+1 < len(body):
			literal.WriteByte(ch)
			literal.WriteByte(body[i+1])
			i++
		case (ch == '{' || ch == '}') && i+1 < len(body) && body[i+1] == ch:
			literal.WriteByte(ch)
			i++
		case ch == '}':
			return nil, token.NewSyntaxError(`"}}" for a literal brace in f-string`, t)
		case ch == '{':
			end := strings.IndexByte(body[i:], '}')
			if end < 0 {
				return nil, token.NewSyntaxError(`"}" closing f-string field`, t)
			}
			flush()
			expr, err := parseField(body[i+1:i+end], column(t.Pos, 2+i+1))
			if err != nil {
				return nil, err
			}
			parts = append(parts, expr)
			i += end
			litPos = column(t.Pos, 2+i+1)
		default:
			literal.WriteByte(ch)
		}
	}
	if literal.Len() > 0 || len(parts) == 0 {
		flush()
	}

	chain := parts[0]
	for _, part := range parts[1:] {
		chain = &ast.BinaryExpression{At: t.Pos, Op: "+", Left: chain, Right: part}
	}
	return chain, nil
}

// column returns the position n bytes right of p on the same line
func column(p token.Pos, n int) token.Pos {
	return token.Pos{Offset: p.Offset + n, Line: p.Line, Column: p.Column + n}
}

// parseField parses the expression inside an f-string replacement field
func parseField(src string, at token.Pos) (ast.Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	for i := range tokens {
		tokens[i].Pos = column(at, tokens[i].Pos.Offset)
	}
	if len(tokens) == 1 {
		return nil, token.NewSyntaxError("expression in f-string field", tokens[0])
	}

	fp := NewParser(tokens)
	expr, err := fp.parseExpression()
	if err != nil {
		return nil, err
	}
	if !fp.cur.AtEOF() {
		return nil, token.NewSyntaxError("end of f-string field", fp.cur.Peek(0))
	}
	return expr, nil
}
