package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
	"github.com/Arking-xx/College-Thesis/internal/ast"
	"github.com/Arking-xx/College-Thesis/internal/translate"
)

var (
	parseFrom   string
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Dump the syntax tree",
	Long: `Parses the source and prints the syntax tree shared by both
languages as JSON or YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFrom, "from", "f", "", "source language (cpp, python)")
	parseCmd.Flags().StringVar(&parseFormat, "format", "json", "output format (json, yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	lang, err := sourceLanguage(parseFrom, src)
	if err != nil {
		return err
	}

	prog, err := translate.Parse(src.text, lang)
	if err != nil {
		return err
	}
	tree := ast.ToMap(prog)

	var out []byte
	switch parseFormat {
	case "json":
		out, err = json.MarshalIndent(tree, "", "  ")
		out = append(out, '\n')
	case "yaml", "yml":
		out, err = yaml.Marshal(tree)
	default:
		return mdwerror.Newf("unknown format %q (want json or yaml)", parseFormat).
			WithCode(mdwerror.CodeInvalidInput)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return err
}
