// File: lexer.go
// Title: Python Tokenizer
// Description: Rule table and keywords of the Python subset.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package python

import "github.com/Arking-xx/College-Thesis/internal/token"

// Grammar is the name used in lex errors and logs
const Grammar = "python"

// Keywords of the subset. range, int, float and str are ordinary names.
var Keywords = []string{
	"def", "if", "elif", "else", "while", "for", "in",
	"return", "pass", "print", "input",
}

// Rules is the ordered rule table. The f-string rule precedes the
// identifier rule so the prefix is not read as a name.
var Rules = []token.Rule{
	{Kind: token.Whitespace, Pattern: `\s+`, Skip: true},
	{Kind: token.Comment, Pattern: `#[^\n]*`, Skip: true},
	{Kind: token.FString, Pattern: `[fF](?:"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*')`},
	{Kind: token.String, Pattern: `"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`},
	{Kind: token.Identifier, Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Kind: token.Number, Pattern: `\d+(?:\.\d+)?`},
	{Kind: token.CompoundAssign, Pattern: `//=|\+=|-=|\*=|/=|%=`},
	{Kind: token.Relational, Pattern: `<=|>=|==|!=|<|>`},
	{Kind: token.Arithmetic, Pattern: `//|[+\-*/%]`},
	{Kind: token.Assign, Pattern: `=`},
	{Kind: token.LParen, Pattern: `\(`},
	{Kind: token.RParen, Pattern: `\)`},
	{Kind: token.Colon, Pattern: `:`},
	{Kind: token.Comma, Pattern: `,`},
}

var scanner = token.NewScanner(Grammar, Rules, Keywords)

// Tokenize splits Python source into tokens ending with EOF
func Tokenize(src string) ([]token.Token, error) {
	return scanner.Tokenize(src)
}
