package cpp

import (
	"strings"
	"testing"

	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/lang/python"
)

func parsePython(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, err := python.Tokenize(src)
	if err != nil {
		t.Fatalf("python.Tokenize() error = %v", err)
	}
	prog, err := python.Parse(tokens)
	if err != nil {
		t.Fatalf("python.Parse() error = %v", err)
	}
	if diags := python.Analyze(prog); diags.HasErrors() {
		t.Fatalf("python.Analyze() = %v", diags.Strings())
	}
	return prog
}

const header = "#include <iostream>\n#include <string>\nusing namespace std;\n\n"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "range loop",
			src:  "for i in range(10):\n    print(i)\n",
			want: header + `int main() {
    for (int i = 0; i < 10; i++) {
        cout << i << endl;
    }
    return 0;
}
`,
		},
		{
			name: "range with start and negative step",
			src:  "for i in range(10, 0, -2):\n    print(i)\n",
			want: header + `int main() {
    for (int i = 10; i > 0; i -= 2) {
        cout << i << endl;
    }
    return 0;
}
`,
		},
		{
			name: "prompted numeric input",
			src:  "x = int(input(\"Enter: \"))\nprint(x)\n",
			want: header + `int main() {
    int x;
    cout << "Enter: ";
    cin >> x;
    cout << x << endl;
    return 0;
}
`,
		},
		{
			name: "string concatenation in print",
			src:  "name = \"Bob\"\nprint(\"Hello \" + name + \"!\")\n",
			want: header + `int main() {
    string name = "Bob";
    cout << "Hello " << name << "!" << endl;
    return 0;
}
`,
		},
		{
			name: "print arguments and end",
			src:  "n = 3\nprint(\"a\", n)\nprint(n, end=\"\")\nprint()\n",
			want: header + `int main() {
    int n = 3;
    cout << "a " << n << endl;
    cout << n;
    cout << endl;
    return 0;
}
`,
		},
		{
			name: "f-string",
			src:  "n = 3\nprint(f\"n={n}\")\n",
			want: header + `int main() {
    int n = 3;
    cout << "n=" << n << endl;
    return 0;
}
`,
		},
		{
			name: "compound assignment",
			src:  "x = 5\nx += 2\nx = x * 3\n",
			want: header + `int main() {
    int x = 5;
    x += 2;
    x *= 3;
    return 0;
}
`,
		},
		{
			name: "declaration hoisted out of branches",
			src:  "x = 5\nif x > 3:\n    y = 1\nelse:\n    y = 2\nprint(y)\n",
			want: header + `int main() {
    int y;
    int x = 5;
    if (x > 3) {
        y = 1;
    } else {
        y = 2;
    }
    cout << y << endl;
    return 0;
}
`,
		},
		{
			name: "elif chain and while",
			src:  "n = 0\nwhile n < 3:\n    if n == 0:\n        print(\"zero\")\n    elif n == 1:\n        print(\"one\")\n    else:\n        print(\"many\")\n    n += 1\n",
			want: header + `int main() {
    int n = 0;
    while (n < 3) {
        if (n == 0) {
            cout << "zero" << endl;
        } else if (n == 1) {
            cout << "one" << endl;
        } else {
            cout << "many" << endl;
        }
        n += 1;
    }
    return 0;
}
`,
		},
		{
			name: "main guard and return types",
			src:  "def total():\n    return 5\n\ndef main():\n    t = total()\n    print(t)\n\nif __name__ == \"__main__\":\n    main()\n",
			want: header + `int total();

int total() {
    return 5;
}

int main() {
    int t = total();
    cout << t << endl;
    return 0;
}
`,
		},
		{
			name: "module variable read by a function",
			src:  "count = 10\n\ndef show():\n    print(count)\n\nshow()\n",
			want: header + `int count;

void show();

void show() {
    cout << count << endl;
}

int main() {
    count = 10;
    show();
    return 0;
}
`,
		},
		{
			name: "function called before its definition",
			src:  "def a():\n    b()\n\ndef b():\n    print(\"b\")\n\na()\n",
			want: header + `void a();
void b();

void a() {
    b();
}

void b() {
    cout << "b" << endl;
}

int main() {
    a();
    return 0;
}
`,
		},
		{
			name: "bound reassigned in the body",
			src:  "n = 3\nfor i in range(n):\n    n = n + 1\n",
			want: header + `int main() {
    int n = 3;
    int i_end = n;
    for (int i = 0; i < i_end; i++) {
        n += 1;
    }
    return 0;
}
`,
		},
		{
			name: "loop variable reassigned in the body",
			src:  "for i in range(3):\n    i = i + 5\n    print(i)\n",
			want: header + `int main() {
    for (int i_idx = 0; i_idx < 3; i_idx++) {
        int i = i_idx;
        i += 5;
        cout << i << endl;
    }
    return 0;
}
`,
		},
		{
			name: "loop variable read after the loop",
			src:  "for i in range(3):\n    pass\nprint(i)\n",
			want: header + `int main() {
    int i;
    for (int i_idx = 0; i_idx < 3; i_idx++) {
        i = i_idx;
    }
    cout << i << endl;
    return 0;
}
`,
		},
		{
			name: "counter name taken",
			src:  "i_idx = 1\nfor i in range(2, 8, 3):\n    i = i_idx\n",
			want: header + `int main() {
    int i_idx = 1;
    for (int i_idx2 = 2; i_idx2 < 8; i_idx2 += 3) {
        int i = i_idx2;
        i = i_idx;
    }
    return 0;
}
`,
		},
		{
			name: "true division",
			src:  "x = 7 / 2\nprint(x)\nn = 3\ny = (n + 1) / 2\nz = (x + 1) / 2\n",
			want: header + `int main() {
    double x = (double)(7) / 2;
    cout << x << endl;
    int n = 3;
    double y = (double)(n + 1) / 2;
    double z = (x + 1) / 2;
    return 0;
}
`,
		},
		{
			name: "conversions",
			src:  "x = 7\ns = str(x)\nf = float(x)\nprint(s + \"!\")\n",
			want: header + `int main() {
    int x = 7;
    string s = to_string(x);
    double f = (double)(x);
    cout << s << "!" << endl;
    return 0;
}
`,
		},
		{
			name: "numbers joined to strings",
			src:  "n = 2\nmsg = \"n is \" + str(n)\nlabel = \"v\" + n\n",
			want: header + `int main() {
    int n = 2;
    string msg = "n is " + to_string(n);
    string label = "v" + to_string(n);
    return 0;
}
`,
		},
		{
			name: "parenthesized operand",
			src:  "a = 1\nb = 2\nc = (a + b) * 2\n",
			want: header + `int main() {
    int a = 1;
    int b = 2;
    int c = (a + b) * 2;
    return 0;
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(parsePython(t, tt.src), Options{})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Generate() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, tt.want)
			}
		})
	}
}

func TestGenerateIndentWidth(t *testing.T) {
	got, err := Generate(parsePython(t, "x = 1\n"), Options{IndentWidth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n  int x = 1;\n") {
		t.Errorf("expected two space indentation, got\n%s", got)
	}
}

func TestGenerateInputOutsideAssignment(t *testing.T) {
	_, err := Generate(parsePython(t, "print(input())\n"), Options{})
	if err == nil {
		t.Fatal("expected an error for input() used as a print argument")
	}
}
