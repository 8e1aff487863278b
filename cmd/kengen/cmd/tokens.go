package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arking-xx/College-Thesis/internal/token"
	"github.com/Arking-xx/College-Thesis/internal/translate"
)

var tokensFrom string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensFrom, "from", "f", "", "source language (cpp, python)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	lang, err := sourceLanguage(tokensFrom, src)
	if err != nil {
		return err
	}

	tokens, err := translate.Tokenize(src.text, lang)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Pos, tok.Kind, tok.Lexeme)
	}
	return w.Flush()
}
