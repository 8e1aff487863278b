package cpp

import (
	"reflect"
	"testing"

	"github.com/Arking-xx/College-Thesis/internal/semantic"
)

func messages(ds semantic.Diagnostics) []string {
	var out []string
	for _, d := range ds {
		out = append(out, d.Message)
	}
	return out
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name         string
		src          string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name: "valid program",
			src: `
int limit = 3;
int twice() {
    return limit * 2;
}
int main() {
    int x;
    cin >> x;
    for (int i = 0; i < limit; i++) {
        if (x > i) {
            cout << "big" << endl;
        }
    }
    cout << (x = twice()) << endl;
    return 0;
}`,
		},
		{
			name:       "undeclared variable",
			src:        "int main() { y = 1; return 0; }",
			wantErrors: []string{"Variable 'y' not declared"},
		},
		{
			name:       "redeclaration",
			src:        "int main() { int x = 1; int x = 2; return 0; }",
			wantErrors: []string{"Variable 'x' already declared in this scope"},
		},
		{
			name:         "shadowing warns",
			src:          "int x = 1;\nint main() { int x = 2; return 0; }",
			wantWarnings: []string{"Variable 'x' shadows a declaration in an outer scope"},
		},
		{
			name:       "declaration type mismatch",
			src:        "int main() { string s = 5; return 0; }",
			wantErrors: []string{"Type mismatch in declaration of 's': expected 'string', got 'int'"},
		},
		{
			name:       "numeric types are interchangeable",
			src:        "int main() { int x = 1; x = 2.5; double d = x; return 0; }",
			wantErrors: nil,
		},
		{
			name:       "non boolean condition",
			src:        "int main() { int x = 1; if (x) { } return 0; }",
			wantErrors: []string{"Condition of if statement must be of type 'bool', got 'int'"},
		},
		{
			name:       "string arithmetic",
			src:        `int main() { string s = "a"; string t = s + "b"; return 0; }`,
			wantErrors: []string{"Invalid operand types 'string' and 'string' for operator '+'"},
		},
		{
			name:       "void function returns value",
			src:        "void f() { return 1; }",
			wantErrors: []string{"Void function 'f' cannot return a value"},
		},
		{
			name:       "missing return value",
			src:        "int f() { return; }",
			wantErrors: []string{"Function 'f' must return a value of type 'int'"},
		},
		{
			name:       "return outside function",
			src:        "return 0;",
			wantErrors: []string{"Return statement outside of a function"},
		},
		{
			name:       "undeclared function",
			src:        "int main() { g(); return 0; }",
			wantErrors: []string{"Function 'g' not declared"},
		},
		{
			name:       "function used before definition",
			src:        "int main() { g(); return 0; }\nvoid g() { }",
			wantErrors: []string{"Function 'g' not declared"},
		},
		{
			name: "prototype before use",
			src:  "void g();\nint main() { g(); return 0; }\nvoid g() { }",
		},
		{
			name:       "prototype with another return type",
			src:        "void g();\nint g() { return 1; }\nint main() { return 0; }",
			wantErrors: []string{"Function 'g' redeclared with return type 'int', was 'void'"},
		},
		{
			name:       "function defined twice",
			src:        "void g() { }\nvoid g() { }\nint main() { return 0; }",
			wantErrors: []string{"Function 'g' already declared in this scope"},
		},
		{
			name:       "nested function",
			src:        "int main() { void f() { } return 0; }",
			wantErrors: []string{"Function 'f' cannot be defined inside function 'main'"},
		},
		{
			name:       "assignment as value outside cout",
			src:        "int main() { int x = 0; int y = x = 3; return 0; }",
			wantErrors: []string{"Assignment used as a value is only supported as a cout operand"},
		},
		{
			name:       "increment as value",
			src:        "int main() { int x = 0; int y = x++; return 0; }",
			wantErrors: []string{"Increment of 'x' used as a value is not supported"},
		},
		{
			name:       "modulo on double",
			src:        "int main() { double d = 1.5; int r = d % 2; return 0; }",
			wantErrors: []string{"Operator '%' requires integer operands, got 'double' and 'int'"},
		},
		{
			name:       "cin into undeclared variable",
			src:        "int main() { cin >> z; return 0; }",
			wantErrors: []string{"Variable 'z' not declared"},
		},
		{
			name:         "increment of string warns",
			src:          `int main() { string s = "a"; s++; return 0; }`,
			wantWarnings: []string{"Increment of non-numeric variable 's' of type 'string'"},
		},
		{
			name: "errors accumulate in source order",
			src:  "int main() { a = 1; b = 2; return 0; }",
			wantErrors: []string{
				"Variable 'a' not declared",
				"Variable 'b' not declared",
			},
		},
		{
			name:       "block scope ends",
			src:        "int main() { { int inner = 1; } inner = 2; return 0; }",
			wantErrors: []string{"Variable 'inner' not declared"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Analyze(parse(t, tt.src))
			if got := messages(diags.Errors()); !reflect.DeepEqual(got, tt.wantErrors) {
				t.Errorf("errors = %q, want %q", got, tt.wantErrors)
			}
			if got := messages(diags.Warnings()); !reflect.DeepEqual(got, tt.wantWarnings) {
				t.Errorf("warnings = %q, want %q", got, tt.wantWarnings)
			}
			if diags.HasErrors() != (len(tt.wantErrors) > 0) {
				t.Errorf("HasErrors() = %v", diags.HasErrors())
			}
		})
	}
}

func TestAnalyzePositions(t *testing.T) {
	diags := Analyze(parse(t, "int main() {\n    missing = 1;\n    return 0;\n}"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Pos.Line != 2 || diags[0].Pos.Column != 5 {
		t.Errorf("position = %s, want 2:5", diags[0].Pos)
	}
}
