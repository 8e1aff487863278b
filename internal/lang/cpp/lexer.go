// File: lexer.go
// Title: C++ Tokenizer
// Description: Rule table and keywords of the C++ subset.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cpp

import "github.com/Arking-xx/College-Thesis/internal/token"

// Grammar is the name used in lex errors and logs
const Grammar = "cpp"

// Keywords of the subset. cout, cin and endl are ordinary identifiers.
var Keywords = []string{
	"int", "float", "double", "bool", "char", "string", "void",
	"if", "else", "while", "for", "return", "using", "namespace",
}

// Rules is the ordered rule table. Multi-character operators precede
// their single character prefixes.
var Rules = []token.Rule{
	{Kind: token.Whitespace, Pattern: `\s+`, Skip: true},
	{Kind: token.Comment, Pattern: `//[^\n]*`, Skip: true},
	{Kind: token.Comment, Pattern: `/\*(?s:.*?)\*/`, Skip: true},
	{Kind: token.Directive, Pattern: `#[^\n]*`, Skip: true},
	{Kind: token.Identifier, Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Kind: token.Number, Pattern: `\d+(?:\.\d+)?`},
	{Kind: token.String, Pattern: `"(?:[^"\\\n]|\\.)*"`},
	{Kind: token.Insertion, Pattern: `<<|>>`},
	{Kind: token.Relational, Pattern: `<=|>=|==|!=|<|>`},
	{Kind: token.Increment, Pattern: `\+\+|--`},
	{Kind: token.CompoundAssign, Pattern: `\+=|-=|\*=|/=|%=`},
	{Kind: token.Arithmetic, Pattern: `[+\-*/%]`},
	{Kind: token.Assign, Pattern: `=`},
	{Kind: token.Semicolon, Pattern: `;`},
	{Kind: token.Comma, Pattern: `,`},
	{Kind: token.LBrace, Pattern: `\{`},
	{Kind: token.RBrace, Pattern: `\}`},
	{Kind: token.LParen, Pattern: `\(`},
	{Kind: token.RParen, Pattern: `\)`},
	{Kind: token.Special, Pattern: `[@!$^&?~|.:\[\]]`},
}

var scanner = token.NewScanner(Grammar, Rules, Keywords)

// Tokenize splits C++ source into tokens ending with EOF
func Tokenize(src string) ([]token.Token, error) {
	return scanner.Tokenize(src)
}

var typeKeywords = map[string]bool{
	"int": true, "float": true, "double": true, "bool": true,
	"char": true, "string": true, "void": true,
}

// IsTypeKeyword reports whether word names a type of the subset
func IsTypeKeyword(word string) bool {
	return typeKeywords[word]
}
