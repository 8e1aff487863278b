package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arking-xx/College-Thesis/internal/translate"
)

var checkFrom string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run semantic analysis without generating code",
	Long: `Parses the source and reports every semantic error and warning.
The command fails when at least one error was found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFrom, "from", "f", "", "source language (cpp, python)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	lang, err := sourceLanguage(checkFrom, src)
	if err != nil {
		return err
	}

	_, diags, err := translate.Check(src.text, lang)
	if err != nil {
		return err
	}

	renderDiagnostics(cmd.OutOrStdout(), src.name, diags)
	fmt.Fprintln(cmd.OutOrStdout(), summary(diags))
	if diags.HasErrors() {
		return errReported
	}
	return nil
}
