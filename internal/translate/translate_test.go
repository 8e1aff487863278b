package translate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
	"github.com/Arking-xx/College-Thesis/internal/token"
	"github.com/Arking-xx/College-Thesis/pkg/core/logging"
)

func quietTranslator(opts Options) *Translator {
	logger := logging.NewLogger(logging.LoggerConfig{Name: "translate", Level: "error", Output: io.Discard})
	return New(opts, logging.Wrap(logger, "translate"))
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"cpp", Cpp, false},
		{"C++", Cpp, false},
		{"python", Python, false},
		{" Py ", Python, false},
		{"java", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.CodeUnsupportedLanguage) {
				t.Errorf("code = %v, want UNSUPPORTED_LANGUAGE", mdwerror.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		from Language
		to   Language
		opts Options
		want string
	}{
		{
			name: "cpp to python",
			src:  "int main() {\n    for (int i = 0; i < 10; i++) {\n        cout << i << endl;\n    }\n    return 0;\n}\n",
			from: Cpp,
			to:   Python,
			want: "for i in range(10):\n    print(i)\n",
		},
		{
			name: "python to cpp",
			src:  "x = int(input(\"Enter: \"))\nprint(x)\n",
			from: Python,
			to:   Cpp,
			want: "#include <iostream>\n#include <string>\nusing namespace std;\n\nint main() {\n    int x;\n    cout << \"Enter: \";\n    cin >> x;\n    cout << x << endl;\n    return 0;\n}\n",
		},
		{
			name: "indent width",
			src:  "int main() {\n    int n = 0;\n    while (n < 2) {\n        cout << endl;\n        n++;\n    }\n    return 0;\n}\n",
			from: Cpp,
			to:   Python,
			opts: Options{IndentWidth: 2},
			want: "n = 0\nwhile n < 2:\n  print()\n  n += 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := quietTranslator(tt.opts).Translate(tt.src, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if res.Code != tt.want {
				t.Errorf("Translate() =\n%s\nwant\n%s", res.Code, tt.want)
			}
			if res.RequestID == "" {
				t.Error("RequestID is empty")
			}
			if res.From != tt.from || res.To != tt.to {
				t.Errorf("languages = %s -> %s", res.From, res.To)
			}
		})
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
		// want is the Python read back; empty means src itself
		want string
	}{
		{name: "range stop", src: "for i in range(10):\n    print(i)\n"},
		{name: "prompted read", src: "x = int(input(\"Enter: \"))\nprint(x)\n"},
		{name: "range start", src: "for i in range(1, 11):\n    print(i)\n"},
		{name: "step two", src: "for i in range(0, 10, 2):\n    print(i)\n"},
		{name: "step minus one", src: "for i in range(5, 0, -1):\n    print(i)\n"},
		{name: "step minus three", src: "for i in range(10, 0, -3):\n    print(i)\n"},
		{name: "variable stop", src: "n = 5\nfor i in range(n):\n    print(i)\n"},
		{
			name: "stop reassigned in the body",
			src:  "n = 3\nfor i in range(n):\n    n = n + 1\n",
			want: "n = 3\ni_end = n\nfor i in range(i_end):\n    n += 1\n",
		},
		{
			name: "loop variable reassigned in the body",
			src:  "for i in range(3):\n    i = i + 5\n    print(i)\n",
			want: "for i_idx in range(3):\n    i = i_idx\n    i += 5\n    print(i)\n",
		},
		{
			name: "loop variable read afterwards",
			src:  "for i in range(3):\n    pass\nprint(i)\n",
			want: "for i_idx in range(3):\n    i = i_idx\nprint(i)\n",
		},
	}

	tr := quietTranslator(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toCpp, err := tr.Translate(tt.src, Python, Cpp)
			if err != nil {
				t.Fatalf("Translate(python -> cpp) error = %v", err)
			}
			back, err := tr.Translate(toCpp.Code, Cpp, Python)
			if err != nil {
				t.Fatalf("Translate(cpp -> python) error = %v\n%s", err, toCpp.Code)
			}
			want := tt.want
			if want == "" {
				want = tt.src
			}
			if back.Code != want {
				t.Errorf("round trip =\n%s\nwant\n%s\nvia\n%s", back.Code, want, toCpp.Code)
			}
		})
	}
}

func TestTranslateCppLoopsSettle(t *testing.T) {
	tests := []struct {
		name string
		loop string
		want string
	}{
		{
			name: "inclusive variable bound",
			loop: "int n = 4;\n    for (int i = 1; i <= n; i++) {",
			want: "n = 4\nfor i in range(1, n + 1):\n    print(i)\n",
		},
		{
			name: "inclusive descending",
			loop: "for (int i = 5; i >= 1; i--) {",
			want: "for i in range(5, 0, -1):\n    print(i)\n",
		},
		{
			name: "descending by three",
			loop: "for (int i = 9; i > 0; i -= 3) {",
			want: "for i in range(9, 0, -3):\n    print(i)\n",
		},
		{
			name: "inclusive by two",
			loop: "for (int i = 0; i <= 10; i += 2) {",
			want: "for i in range(0, 11, 2):\n    print(i)\n",
		},
	}

	tr := quietTranslator(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "int main() {\n    " + tt.loop + "\n        cout << i << endl;\n    }\n    return 0;\n}\n"
			first, err := tr.Translate(src, Cpp, Python)
			if err != nil {
				t.Fatalf("Translate(cpp -> python) error = %v", err)
			}
			if first.Code != tt.want {
				t.Errorf("Translate() =\n%s\nwant\n%s", first.Code, tt.want)
			}

			// the same loop must come back after a trip through C++
			toCpp, err := tr.Translate(first.Code, Python, Cpp)
			if err != nil {
				t.Fatalf("Translate(python -> cpp) error = %v", err)
			}
			again, err := tr.Translate(toCpp.Code, Cpp, Python)
			if err != nil {
				t.Fatalf("Translate(cpp -> python) error = %v\n%s", err, toCpp.Code)
			}
			if again.Code != first.Code {
				t.Errorf("second trip =\n%s\nwant\n%s\nvia\n%s", again.Code, first.Code, toCpp.Code)
			}
		})
	}
}

func TestTranslateSameLanguage(t *testing.T) {
	_, err := quietTranslator(Options{}).Translate("x = 1\n", Python, Python)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
}

func TestTranslateLexError(t *testing.T) {
	res, err := quietTranslator(Options{}).Translate("x = 1 ; y", Python, Cpp)
	if res != nil {
		t.Errorf("result = %+v, want nil", res)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeLexError) {
		t.Errorf("code = %v, want LEX_ERROR", mdwerror.GetCode(err))
	}
	var lexErr *token.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *token.LexError in chain, got %v", err)
	}
	if lexErr.Pos.Line != 1 {
		t.Errorf("line = %d, want 1", lexErr.Pos.Line)
	}
}

func TestTranslateSyntaxError(t *testing.T) {
	_, err := quietTranslator(Options{}).Translate("int x = 5\nint y;", Cpp, Python)
	if !mdwerror.HasCode(err, mdwerror.CodeSyntaxError) {
		t.Errorf("code = %v, want SYNTAX_ERROR", mdwerror.GetCode(err))
	}
	var synErr *token.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *token.SyntaxError in chain, got %v", err)
	}
	if synErr.Pos().Line != 2 {
		t.Errorf("line = %d, want 2", synErr.Pos().Line)
	}
}

func TestTranslateSemanticErrors(t *testing.T) {
	res, err := quietTranslator(Options{}).Translate("int main() { y = 1; z = 2; return 0; }", Cpp, Python)
	if !mdwerror.HasCode(err, mdwerror.CodeSemanticError) {
		t.Fatalf("code = %v, want SEMANTIC_ERROR", mdwerror.GetCode(err))
	}
	if res == nil {
		t.Fatal("result is nil, want diagnostics")
	}
	if res.Code != "" {
		t.Errorf("Code = %q, want empty", res.Code)
	}
	want := []string{"Variable 'y' not declared", "Variable 'z' not declared"}
	errs := res.Diagnostics.Errors()
	if len(errs) != len(want) {
		t.Fatalf("errors = %v, want %v", res.Diagnostics.Strings(), want)
	}
	for i, d := range errs {
		if d.Message != want[i] {
			t.Errorf("error[%d] = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestTranslateWarningsKeepCode(t *testing.T) {
	src := `int main() { string s = "a"; s++; return 0; }`
	res, err := quietTranslator(Options{}).Translate(src, Cpp, Python)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if res.Code == "" {
		t.Error("Code is empty")
	}
	if w := res.Diagnostics.Warnings(); len(w) != 1 {
		t.Errorf("warnings = %v, want one", res.Diagnostics.Strings())
	}
}

func TestTranslateLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LoggerConfig{Name: "translate", Level: "debug", Format: "json", Output: &buf})
	tr := New(Options{}, logging.Wrap(logger, "translate"))

	res, err := tr.Translate("x = 1\n", Python, Cpp)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !strings.Contains(buf.String(), res.RequestID) {
		t.Errorf("log output does not carry request id %s:\n%s", res.RequestID, buf.String())
	}
}

func TestTranslateConcurrent(t *testing.T) {
	tr := quietTranslator(Options{})
	src := "for i in range(3):\n    print(i)\n"
	want, err := tr.Translate(src, Python, Cpp)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := tr.Translate(src, Python, Cpp)
			if err != nil {
				t.Errorf("Translate() error = %v", err)
				return
			}
			results[i] = res.Code
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want.Code {
			t.Errorf("result %d = %q, want %q", i, got, want.Code)
		}
	}
}

func TestStages(t *testing.T) {
	tokens, err := Tokenize("x = 1\n", Python)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) == 0 || tokens[0].Lexeme != "x" {
		t.Errorf("tokens = %v", tokens)
	}

	prog, diags, err := Check("int main() { int x = 1; int x = 2; return 0; }", Cpp)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if prog == nil || len(prog.Body) != 1 {
		t.Errorf("program = %#v", prog)
	}
	if !diags.HasErrors() {
		t.Error("Check() found no errors")
	}

	if _, err := Parse("x = 1", "ruby"); !mdwerror.HasCode(err, mdwerror.CodeUnsupportedLanguage) {
		t.Errorf("code = %v, want UNSUPPORTED_LANGUAGE", mdwerror.GetCode(err))
	}
}

type fakeCommenter struct {
	reply string
	err   error
	lang  string
}

func (f *fakeCommenter) Comment(_ context.Context, code, lang string) (string, error) {
	f.lang = lang
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAnnotate(t *testing.T) {
	tr := quietTranslator(Options{})
	res, err := tr.Translate("x = 1\n", Python, Cpp)
	if err != nil {
		t.Fatal(err)
	}
	original := res.Code

	failing := &fakeCommenter{err: errors.New("connection refused")}
	if err := tr.Annotate(context.Background(), res, failing); err == nil {
		t.Error("Annotate() expected error")
	}
	if res.Code != original || res.Annotated {
		t.Error("failed annotation modified the result")
	}
	if failing.lang != "c++" {
		t.Errorf("lang = %q, want c++", failing.lang)
	}

	ok := &fakeCommenter{reply: "// commented\n" + original}
	if err := tr.Annotate(context.Background(), res, ok); err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if !res.Annotated || !strings.HasPrefix(res.Code, "// commented\n") {
		t.Errorf("Annotate() result = %+v", res)
	}
}
