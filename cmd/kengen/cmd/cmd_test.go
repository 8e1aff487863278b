package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
)

// execute runs the root command with fresh flag values
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("KENGEN_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfgFile, verbose = "", false
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		reset := func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const cppLoop = `#include <iostream>
using namespace std;

int main() {
    for (int i = 0; i < 3; i++) {
        cout << i << endl;
    }
    return 0;
}
`

func TestTranslateFromFile(t *testing.T) {
	path := writeFile(t, "loop.cpp", cppLoop)

	out, _, err := execute(t, "", "translate", path)
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	if want := "for i in range(3):\n    print(i)\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestTranslateFromStdin(t *testing.T) {
	out, _, err := execute(t, "print(\"hi\")\n", "translate", "--from", "py")
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	if !strings.Contains(out, "cout << \"hi\" << endl;") {
		t.Errorf("output = %q", out)
	}
}

func TestTranslateFlags(t *testing.T) {
	path := writeFile(t, "loop.cpp", cppLoop)
	outPath := filepath.Join(t.TempDir(), "loop.py")

	stdout, _, err := execute(t, "", "translate", "--indent", "2", "--main", "-o", outPath, path)
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "def main():\n  for i in range(3):\n    print(i)\n\nif __name__ == \"__main__\":\n  main()\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestTranslateSemanticErrors(t *testing.T) {
	path := writeFile(t, "bad.cpp", "int main() { y = 1; return 0; }\n")

	out, stderr, err := execute(t, "", "translate", path)
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if !strings.Contains(stderr, "bad.cpp:1:14") || !strings.Contains(stderr, "Variable 'y' not declared") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestTranslateUnknownLanguage(t *testing.T) {
	path := writeFile(t, "prog.txt", "x = 1\n")

	_, _, err := execute(t, "", "translate", path)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}

	_, _, err = execute(t, "x = 1\n", "translate", "--from", "py", "--to", "go")
	if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedLanguage) {
		t.Errorf("code = %v, want UNSUPPORTED_LANGUAGE", mdwerror.GetCode(err))
	}
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "x = 1\nprint(x)\n", "check", "--from", "python")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, "no issues found") {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "print(y)\n", "check", "--from", "python")
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	if !strings.Contains(out, "Variable 'y' not declared") || !strings.Contains(out, "1 error(s), 0 warning(s)") {
		t.Errorf("output = %q", out)
	}
}

func TestTokens(t *testing.T) {
	out, _, err := execute(t, "x = 1\n", "tokens", "--from", "python")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("output = %q", out)
	}
	if !strings.Contains(lines[0], `"x"`) || !strings.HasPrefix(lines[0], "1:1") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestParseFormats(t *testing.T) {
	out, _, err := execute(t, "x = 1\n", "parse", "--from", "python")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("json output: %v\n%s", err, out)
	}
	if tree["kind"] != "Program" {
		t.Errorf("kind = %v, want Program", tree["kind"])
	}

	out, _, err = execute(t, "int main() { return 0; }", "parse", "--from", "cpp", "--format", "yaml")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	tree = nil
	if err := yaml.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("yaml output: %v\n%s", err, out)
	}
	if tree["kind"] != "Program" {
		t.Errorf("kind = %v, want Program", tree["kind"])
	}

	_, _, err = execute(t, "x = 1\n", "parse", "--from", "python", "--format", "xml")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFile(t, "kengen.toml", "[translate]\nindent_width = 2\n")
	src := "int main() {\n    int n = 0;\n    while (n < 2) {\n        cout << endl;\n        n++;\n    }\n    return 0;\n}\n"

	out, _, err := execute(t, src, "--config", cfg, "translate", "--from", "cpp")
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	if want := "n = 0\nwhile n < 2:\n  print()\n  n += 1\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	_, _, err = execute(t, src, "--config", filepath.Join(t.TempDir(), "missing.toml"), "translate")
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("code = %v, want CONFIG_ERROR", mdwerror.GetCode(err))
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "kengen 0.1.0") {
		t.Errorf("output = %q", out)
	}
}
