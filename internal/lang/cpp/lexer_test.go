package cpp

import (
	"errors"
	"testing"

	"github.com/Arking-xx/College-Thesis/internal/token"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []token.Kind
	}{
		{
			name:  "declaration",
			input: "int x = 5;",
			kinds: []token.Kind{token.Keyword, token.Identifier, token.Assign, token.Number, token.Semicolon, token.EOF},
		},
		{
			name:  "directives and comments skipped",
			input: "#include <iostream>\n// note\n/* block\ncomment */ x;",
			kinds: []token.Kind{token.Identifier, token.Semicolon, token.EOF},
		},
		{
			name:  "stream operators",
			input: `cout << "a" << endl; cin >> x;`,
			kinds: []token.Kind{
				token.Identifier, token.Insertion, token.String, token.Insertion, token.Identifier, token.Semicolon,
				token.Identifier, token.Insertion, token.Identifier, token.Semicolon, token.EOF,
			},
		},
		{
			name:  "composite operators",
			input: "i++ x += 2 a <= b c - d",
			kinds: []token.Kind{
				token.Identifier, token.Increment,
				token.Identifier, token.CompoundAssign, token.Number,
				token.Identifier, token.Relational, token.Identifier,
				token.Identifier, token.Arithmetic, token.Identifier, token.EOF,
			},
		},
		{
			name:  "decimal number",
			input: "3.14",
			kinds: []token.Kind{token.Number, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(tt.kinds))
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d = %s, want kind %s", i, tok, tt.kinds[i])
				}
			}
		})
	}
}

func TestTokenizeKeywords(t *testing.T) {
	tokens, err := Tokenize("int cout endl namespace")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{token.Keyword, token.Identifier, token.Identifier, token.Keyword}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("%q kind = %s, want %s", tokens[i].Lexeme, tokens[i].Kind, kind)
		}
	}
}

func TestTokenizeError(t *testing.T) {
	_, err := Tokenize("int x;\nstring s = \"open;")
	var lexErr *token.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *token.LexError, got %v", err)
	}
	if lexErr.Pos.Line != 2 || lexErr.Pos.Column != 12 {
		t.Errorf("position = %s, want 2:12", lexErr.Pos)
	}
}

func TestIsTypeKeyword(t *testing.T) {
	for _, word := range []string{"int", "double", "string", "void"} {
		if !IsTypeKeyword(word) {
			t.Errorf("IsTypeKeyword(%q) = false", word)
		}
	}
	for _, word := range []string{"if", "cout", "auto"} {
		if IsTypeKeyword(word) {
			t.Errorf("IsTypeKeyword(%q) = true", word)
		}
	}
}
