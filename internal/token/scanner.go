// File: scanner.go
// Title: Table-Driven Scanner
// Description: Ordered first-match tokenizer shared by the grammar
//              frontends. Each grammar supplies its rule table and keywords.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule maps a pattern to a token kind. Rules are tried in table order and
// the first rule matching at the cursor wins, so composite operators must
// precede their single-character prefixes.
type Rule struct {
	Kind    Kind
	Pattern string
	// Skip drops matches from the output (whitespace, comments, directives)
	Skip bool
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Scanner tokenizes text for one grammar. It holds no per-call state and
// may be shared between goroutines.
type Scanner struct {
	grammar  string
	rules    []compiledRule
	keywords map[string]bool
}

// NewScanner compiles a rule table. It panics on an invalid pattern since
// tables are package-level literals.
func NewScanner(grammar string, rules []Rule, keywords []string) *Scanner {
	s := &Scanner{
		grammar:  grammar,
		rules:    make([]compiledRule, 0, len(rules)),
		keywords: make(map[string]bool, len(keywords)),
	}
	for _, r := range rules {
		s.rules = append(s.rules, compiledRule{Rule: r, re: regexp.MustCompile(`^(?:` + r.Pattern + `)`)})
	}
	for _, kw := range keywords {
		s.keywords[kw] = true
	}
	return s
}

// Grammar returns the name the scanner was built for
func (s *Scanner) Grammar() string { return s.grammar }

// IsKeyword reports whether word is reserved in this grammar
func (s *Scanner) IsKeyword(word string) bool { return s.keywords[word] }

// Tokenize converts text into tokens terminated by a single EOF token.
// Text no rule matches fails with a *LexError; nothing is skipped silently.
func (s *Scanner) Tokenize(text string) ([]Token, error) {
	var (
		tokens []Token
		pos    = Pos{Offset: 0, Line: 1, Column: 1}
	)

	for pos.Offset < len(text) {
		rest := text[pos.Offset:]
		matched := false

		for _, r := range s.rules {
			loc := r.re.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}
			lexeme := rest[:loc[1]]
			if !r.Skip {
				kind := r.Kind
				if kind == Identifier && s.keywords[lexeme] {
					kind = Keyword
				}
				tokens = append(tokens, Token{Kind: kind, Lexeme: lexeme, Pos: pos})
			}
			pos = advance(pos, lexeme)
			matched = true
			break
		}

		if !matched {
			return nil, &LexError{Grammar: s.grammar, Pos: pos, Snippet: snippet(rest)}
		}
	}

	return append(tokens, Token{Kind: EOF, Pos: pos}), nil
}

func advance(p Pos, lexeme string) Pos {
	p.Offset += len(lexeme)
	if n := strings.Count(lexeme, "\n"); n > 0 {
		p.Line += n
		p.Column = utf8.RuneCountInString(lexeme[strings.LastIndex(lexeme, "\n")+1:]) + 1
		return p
	}
	p.Column += utf8.RuneCountInString(lexeme)
	return p
}

const snippetLen = 10

func snippet(rest string) string {
	if utf8.RuneCountInString(rest) <= snippetLen {
		return rest
	}
	return string([]rune(rest)[:snippetLen])
}

// LexError reports text that no rule of the grammar matches
type LexError struct {
	Grammar string
	Pos     Pos
	Snippet string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s lex error at offset %d (line %d, column %d): unexpected character near %q",
		e.Grammar, e.Pos.Offset, e.Pos.Line, e.Pos.Column, e.Snippet)
}
