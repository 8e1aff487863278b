// File: translate.go
// Title: Translation Pipeline
// Description: Runs tokenizer, parser, analyzer and generator for one
//              source text. Every call owns its own tokens, tree and
//              symbol table, so a Translator may be shared by goroutines.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package translate

import (
	"context"
	"errors"

	"github.com/google/uuid"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/lang/cpp"
	"github.com/Arking-xx/College-Thesis/internal/lang/python"
	"github.com/Arking-xx/College-Thesis/internal/semantic"
	"github.com/Arking-xx/College-Thesis/internal/token"
	"github.com/Arking-xx/College-Thesis/pkg/core/logging"
)

// Options controls code generation
type Options struct {
	// UseMain keeps a C++ main as a Python function behind a __main__ guard
	UseMain bool
	// IndentWidth is the number of spaces per level; 4 when zero
	IndentWidth int
}

// Result is the outcome of one translation
type Result struct {
	RequestID   string
	From        Language
	To          Language
	Code        string
	Diagnostics semantic.Diagnostics
	// Annotated is set once comments were added to Code
	Annotated bool
}

// Commenter adds comments to generated code
type Commenter interface {
	Comment(ctx context.Context, code, lang string) (string, error)
}

// Translator converts between the C++ and Python subsets
type Translator struct {
	opts   Options
	logger *logging.Logger
}

// New creates a translator. A nil logger uses the default logger.
func New(opts Options, logger *logging.Logger) *Translator {
	if logger == nil {
		logger = logging.New("translate")
	}
	return &Translator{opts: opts, logger: logger}
}

// Tokenize runs the tokenizer of lang over src
func Tokenize(src string, lang Language) ([]token.Token, error) {
	fe, err := frontendFor(lang)
	if err != nil {
		return nil, err
	}
	tokens, err := fe.tokenize(src)
	if err != nil {
		return nil, stageError(err, lang, "tokenize")
	}
	return tokens, nil
}

// Parse tokenizes and parses src
func Parse(src string, lang Language) (*ast.Program, error) {
	tokens, err := Tokenize(src, lang)
	if err != nil {
		return nil, err
	}
	prog, err := frontends[lang].parse(tokens)
	if err != nil {
		return nil, stageError(err, lang, "parse")
	}
	return prog, nil
}

// Check parses src and runs semantic analysis. Findings are returned
// without being turned into an error.
func Check(src string, lang Language) (*ast.Program, semantic.Diagnostics, error) {
	prog, err := Parse(src, lang)
	if err != nil {
		return nil, nil, err
	}
	return prog, frontends[lang].analyze(prog), nil
}

// Translate converts src from one language to the other. Lexical and
// syntax failures return no result. Semantic errors return the result with
// all diagnostics and no code, together with a SEMANTIC_ERROR. Warnings
// travel with the generated code.
func (t *Translator) Translate(src string, from, to Language) (*Result, error) {
	res := &Result{RequestID: uuid.NewString(), From: from, To: to}
	log := t.logger.With("request_id", res.RequestID, "from", string(from), "to", string(to))

	if from == to {
		return nil, mdwerror.Newf("source and target language are both %s", from).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("translate.Translate")
	}
	if _, err := frontendFor(to); err != nil {
		return nil, err
	}

	timer := log.StartTimer("translate")
	prog, diags, err := Check(src, from)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	res.Diagnostics = diags

	for _, d := range diags.Warnings() {
		log.Debug("semantic warning", "message", d.Message, "line", d.Pos.Line, "column", d.Pos.Column)
	}
	if diags.HasErrors() {
		errs := diags.Errors()
		err := mdwerror.Newf("semantic analysis found %d error(s); first: %s", len(errs), errs[0]).
			WithCode(mdwerror.CodeSemanticError).
			WithDetail("errors", len(errs)).
			WithOperation("translate.Translate")
		timer.StopWithError(err)
		return res, err
	}

	code, err := t.generate(prog, to)
	if err != nil {
		err = mdwerror.Wrap(err, "code generation failed").
			WithCode(mdwerror.CodeGenerationError).
			WithOperation("translate.Translate")
		timer.StopWithError(err)
		return nil, err
	}
	res.Code = code

	timer.WithField("warnings", len(diags)).Stop()
	return res, nil
}

func (t *Translator) generate(prog *ast.Program, to Language) (string, error) {
	if to == Cpp {
		return cpp.Generate(prog, cpp.Options{IndentWidth: t.opts.IndentWidth})
	}
	return python.Generate(prog, python.Options{
		IndentWidth: t.opts.IndentWidth,
		UseMain:     t.opts.UseMain,
	})
}

// Annotate replaces res.Code with a commented version from c. A failure is
// logged and returned, and leaves res untouched.
func (t *Translator) Annotate(ctx context.Context, res *Result, c Commenter) error {
	if res == nil || res.Code == "" {
		return nil
	}
	log := t.logger.With("request_id", res.RequestID)

	timer := log.StartTimer("annotate")
	commented, err := c.Comment(ctx, res.Code, res.To.CommentTag())
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	res.Code = commented
	res.Annotated = true
	return nil
}

// stageError codes a tokenizer or parser failure. The original error stays
// reachable through errors.As.
func stageError(err error, lang Language, stage string) error {
	code := mdwerror.CodeInternal
	var (
		lexErr    *token.LexError
		syntaxErr *token.SyntaxError
	)
	switch {
	case errors.As(err, &lexErr):
		code = mdwerror.CodeLexError
	case errors.As(err, &syntaxErr):
		code = mdwerror.CodeSyntaxError
	}
	return mdwerror.Wrap(err, stage+" failed").
		WithCode(code).
		WithDetail("language", string(lang)).
		WithOperation("translate." + stage)
}
