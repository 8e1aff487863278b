// File: language.go
// Title: Source Languages
// Description: Language tags accepted by the translator and the stage
//              functions of each frontend.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package translate

import (
	"strings"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/lang/cpp"
	"github.com/Arking-xx/College-Thesis/internal/lang/python"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
	"github.com/Arking-xx/College-Thesis/internal/token"
)

// Language identifies one side of a translation
type Language string

const (
	Cpp    Language = "cpp"
	Python Language = "python"
)

// ParseLanguage accepts cpp, c++, python and py in any case
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpp", "c++":
		return Cpp, nil
	case "python", "py":
		return Python, nil
	}
	return "", mdwerror.Newf("unsupported language %q (want cpp or python)", name).
		WithCode(mdwerror.CodeUnsupportedLanguage).
		WithOperation("translate.ParseLanguage")
}

func (l Language) String() string { return string(l) }

// CommentTag is the language name the comment service expects
func (l Language) CommentTag() string {
	if l == Cpp {
		return "c++"
	}
	return "python"
}

// frontend bundles the stages that read one language
type frontend struct {
	tokenize func(string) ([]token.Token, error)
	parse    func([]token.Token) (*ast.Program, error)
	analyze  func(*ast.Program) semantic.Diagnostics
}

var frontends = map[Language]frontend{
	Cpp:    {tokenize: cpp.Tokenize, parse: cpp.Parse, analyze: cpp.Analyze},
	Python: {tokenize: python.Tokenize, parse: python.Parse, analyze: python.Analyze},
}

func frontendFor(lang Language) (frontend, error) {
	fe, ok := frontends[lang]
	if !ok {
		return frontend{}, mdwerror.Newf("unsupported language %q", string(lang)).
			WithCode(mdwerror.CodeUnsupportedLanguage)
	}
	return fe, nil
}
