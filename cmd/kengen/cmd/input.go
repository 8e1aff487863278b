package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
	"github.com/Arking-xx/College-Thesis/internal/translate"
)

// source is the text to work on and the name used in messages
type source struct {
	name string
	text string
}

// readSource reads the file named by the first argument, or stdin
func readSource(cmd *cobra.Command, args []string) (source, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return source{}, mdwerror.Wrap(err, "cannot read input").
				WithCode(mdwerror.CodeInvalidInput)
		}
		return source{name: args[0], text: string(data)}, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return source{}, mdwerror.Wrap(err, "cannot read stdin").
			WithCode(mdwerror.CodeInvalidInput)
	}
	return source{name: "<stdin>", text: string(data)}, nil
}

// sourceLanguage resolves --from, falling back to the file extension
func sourceLanguage(flag string, src source) (translate.Language, error) {
	if flag != "" {
		return translate.ParseLanguage(flag)
	}
	switch strings.ToLower(filepath.Ext(src.name)) {
	case ".cpp", ".cc", ".cxx", ".c++", ".hpp", ".h":
		return translate.Cpp, nil
	case ".py":
		return translate.Python, nil
	}
	return "", mdwerror.Newf("cannot infer the language of %s, use --from", src.name).
		WithCode(mdwerror.CodeInvalidInput)
}

func other(lang translate.Language) translate.Language {
	if lang == translate.Cpp {
		return translate.Python
	}
	return translate.Cpp
}
