// File: parser.go
// Title: C++ Parser
// Description: Recursive-descent parser for the C++ subset. Decisions use at
//              most three tokens of lookahead and never backtrack.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cpp

import (
	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/token"
)

// Parser builds a tree from C++ tokens. A Parser is single use.
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

// ParseProgram parses statements until EOF. The first syntax error aborts.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.cur.AtEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	t := p.cur.Peek(0)

	switch t.Kind {
	case token.Keyword:
		switch {
		case t.Lexeme == "if":
			return p.parseIf()
		case t.Lexeme == "while":
			return p.parseWhile()
		case t.Lexeme == "for":
			return p.parseFor()
		case t.Lexeme == "return":
			return p.parseReturn()
		case t.Lexeme == "using":
			return p.parseUsing()
		case IsTypeKeyword(t.Lexeme):
			return p.parseDeclaration(true)
		}
	case token.Identifier:
		return p.parseIdentifierStatement()
	case token.Increment:
		inc, err := p.parsePrefixIncrement()
		if err != nil {
			return nil, err
		}
		return inc, p.expectSemicolon()
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.cur.Next()
		return &ast.EmptyStatement{At: t.Pos}, nil
	case token.Number, token.String, token.LParen, token.Arithmetic:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return expr, p.expectSemicolon()
	}

	return nil, token.NewSyntaxError("statement", t)
}

func (p *Parser) expectSemicolon() error {
	_, err := p.cur.Expect(token.Semicolon, ";")
	return err
}

// parseIdentifierStatement dispatches on the token after a leading name
func (p *Parser) parseIdentifierStatement() (ast.Stmt, error) {
	name := p.cur.Peek(0)
	next := p.cur.Peek(1)

	switch {
	case next.Kind == token.LParen:
		call, err := p.parseCall()
		if err != nil {
			return nil, err
		}
		return call, p.expectSemicolon()
	case next.Kind == token.Increment, next.Kind == token.Assign, next.Kind == token.CompoundAssign:
		stmt, err := p.parseSimpleUpdate()
		if err != nil {
			return nil, err
		}
		return stmt, p.expectSemicolon()
	case (name.Lexeme == "cout" || name.Lexeme == "cin") && next.Kind == token.Insertion:
		return p.parseIO()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return expr, p.expectSemicolon()
}

// parseSimpleUpdate parses x++, x--, x = e and x op= e without the
// terminator so that it also serves the for-loop clauses
func (p *Parser) parseSimpleUpdate() (ast.Stmt, error) {
	name, err := p.cur.Expect(token.Identifier, "")
	if err != nil {
		return nil, err
	}

	op := p.cur.Next()
	switch op.Kind {
	case token.Increment:
		return &ast.Increment{At: name.Pos, Name: name.Lexeme, Op: op.Lexeme}, nil
	case token.Assign:
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{At: name.Pos, Name: name.Lexeme, Value: value}, nil
	case token.CompoundAssign:
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{
			At:   name.Pos,
			Name: name.Lexeme,
			Value: &ast.BinaryExpression{
				At:    name.Pos,
				Op:    op.Lexeme[:len(op.Lexeme)-1],
				Left:  &ast.Identifier{At: name.Pos, Name: name.Lexeme},
				Right: value,
			},
		}, nil
	}
	return nil, token.NewSyntaxError("assignment or increment operator", op)
}

func (p *Parser) parsePrefixIncrement() (*ast.Increment, error) {
	op := p.cur.Next()
	name, err := p.cur.Expect(token.Identifier, "")
	if err != nil {
		return nil, err
	}
	return &ast.Increment{At: op.Pos, Name: name.Lexeme, Op: op.Lexeme}, nil
}

// parseDeclaration parses "type name ..." as a function definition when
// "(" follows the name and as a variable declaration otherwise. A
// function without a body is a prototype.
// Functions are rejected when allowFunction is false.
func (p *Parser) parseDeclaration(allowFunction bool) (ast.Stmt, error) {
	typ := p.cur.Next()
	name, err := p.cur.Expect(token.Identifier, "")
	if err != nil {
		return nil, err
	}

	if p.cur.Peek(0).Kind == token.LParen && allowFunction {
		p.cur.Next()
		if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
			return nil, err
		}
		if p.cur.Peek(0).Kind == token.Semicolon {
			p.cur.Next()
			return &ast.FunctionDefinition{At: typ.Pos, ReturnType: typ.Lexeme, Name: name.Lexeme}, nil
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDefinition{At: typ.Pos, ReturnType: typ.Lexeme, Name: name.Lexeme, Body: body}, nil
	}

	decl := &ast.VariableDeclaration{At: typ.Pos, Type: typ.Lexeme, Name: name.Lexeme}
	if _, ok := p.cur.Accept(token.Assign, "="); ok {
		if decl.Init, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	return decl, p.expectSemicolon()
}

func (p *Parser) parseIO() (ast.Stmt, error) {
	stream := p.cur.Next()
	io := &ast.IOStatement{At: stream.Pos, Op: ast.Output}
	want := "<<"
	if stream.Lexeme == "cin" {
		io.Op = ast.Input
		want = ">>"
	}

	for p.cur.Peek(0).Kind == token.Insertion {
		if _, err := p.cur.Expect(token.Insertion, want); err != nil {
			return nil, err
		}
		operand, err := p.parseIOOperand(io.Op)
		if err != nil {
			return nil, err
		}
		io.Exprs = append(io.Exprs, operand)
	}
	return io, p.expectSemicolon()
}

func (p *Parser) parseIOOperand(op ast.IOOp) (ast.Expr, error) {
	t := p.cur.Peek(0)
	if op == ast.Input {
		name, err := p.cur.Expect(token.Identifier, "")
		if err != nil {
			return nil, err
		}
		return &ast.Identifier{At: name.Pos, Name: name.Lexeme}, nil
	}
	if t.Is(token.Identifier, "endl") {
		p.cur.Next()
		return &ast.StringLiteral{At: t.Pos, Value: `\n`}, nil
	}
	return p.parseExpression()
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.cur.Next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{At: start.Pos, Cond: cond, Then: then}
	if _, ok := p.cur.Accept(token.Keyword, "else"); ok {
		if p.cur.Peek(0).Is(token.Keyword, "if") {
			stmt.Else, err = p.parseIf()
		} else {
			stmt.Else, err = p.parseStatement()
		}
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseCondition() (ast.Expr, error) {
	if _, err := p.cur.Expect(token.LParen, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := p.cur.Next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{At: start.Pos, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.cur.Next()
	if _, err := p.cur.Expect(token.LParen, "("); err != nil {
		return nil, err
	}
	loop := &ast.ForLoop{At: start.Pos, Shape: ast.ForClause}

	// init clause, consumes its own semicolon
	t := p.cur.Peek(0)
	switch {
	case t.Kind == token.Semicolon:
		p.cur.Next()
	case t.Kind == token.Keyword && IsTypeKeyword(t.Lexeme):
		init, err := p.parseDeclaration(false)
		if err != nil {
			return nil, err
		}
		loop.Init = init
	case t.Kind == token.Identifier:
		init, err := p.parseSimpleUpdate()
		if err != nil {
			return nil, err
		}
		loop.Init = init
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
	default:
		return nil, token.NewSyntaxError("loop initializer", t)
	}

	if p.cur.Peek(0).Kind != token.Semicolon {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		loop.Cond = cond
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	switch t := p.cur.Peek(0); t.Kind {
	case token.RParen:
	case token.Identifier:
		post, err := p.parseSimpleUpdate()
		if err != nil {
			return nil, err
		}
		loop.Post = post
	case token.Increment:
		post, err := p.parsePrefixIncrement()
		if err != nil {
			return nil, err
		}
		loop.Post = post
	default:
		return nil, token.NewSyntaxError("loop update", t)
	}
	if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	loop.Body = body
	return loop, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.cur.Next()
	ret := &ast.ReturnStatement{At: start.Pos}
	if p.cur.Peek(0).Kind != token.Semicolon {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ret.Value = value
	}
	return ret, p.expectSemicolon()
}

// parseUsing accepts "using namespace name;" and drops it
func (p *Parser) parseUsing() (ast.Stmt, error) {
	start := p.cur.Next()
	if _, err := p.cur.Expect(token.Keyword, "namespace"); err != nil {
		return nil, err
	}
	if _, err := p.cur.Expect(token.Identifier, ""); err != nil {
		return nil, err
	}
	return &ast.EmptyStatement{At: start.Pos}, p.expectSemicolon()
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.cur.Expect(token.LBrace, "{")
	if err != nil {
		return nil, err
	}
	block := &ast.Block{At: open.Pos}
	for {
		if _, ok := p.cur.Accept(token.RBrace, "}"); ok {
			return block, nil
		}
		if p.cur.AtEOF() {
			return nil, token.NewSyntaxError(`"}"`, p.cur.Peek(0))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
}

func isExpressionOperator(t token.Token) bool {
	switch t.Kind {
	case token.Arithmetic, token.Relational, token.Assign:
		return true
	}
	return false
}

// parseExpression parses a flat left-associative chain. "=" is part of the
// operator class so an assignment written inside a cout operand survives
// as a binary node; the analyzer decides where that is allowed.
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
	case token.Arithmetic:
		if t.Lexeme == "-" && p.cur.Peek(1).Kind == token.Number {
			p.cur.Next()
			num := p.cur.Next()
			return &ast.NumberLiteral{At: t.Pos, Value: "-" + num.Lexeme}, nil
		}
	case token.Identifier:
		switch p.cur.Peek(1).Kind {
		case token.LParen:
			return p.parseCall()
		case token.Increment:
			p.cur.Next()
			op := p.cur.Next()
			return &ast.Increment{At: t.Pos, Name: t.Lexeme, Op: op.Lexeme}, nil
		}
		p.cur.Next()
		return &ast.Identifier{At: t.Pos, Name: t.Lexeme}, nil
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

func (p *Parser) parseCall() (*ast.FunctionCall, error) {
	name := p.cur.Next()
	if _, err := p.cur.Expect(token.LParen, "("); err != nil {
		return nil, err
	}
	call := &ast.FunctionCall{At: name.Pos, Name: name.Lexeme}
	if _, ok := p.cur.Accept(token.RParen, ")"); ok {
		return call, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if _, ok := p.cur.Accept(token.Comma, ","); !ok {
			break
		}
	}
	if _, err := p.cur.Expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	return call, nil
}
