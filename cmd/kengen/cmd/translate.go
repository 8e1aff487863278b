package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arking-xx/College-Thesis/internal/augment"
	"github.com/Arking-xx/College-Thesis/internal/translate"
)

var (
	translateFrom    string
	translateTo      string
	translateMain    bool
	translateIndent  int
	translateComment bool
	translateOut     string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate C++ to Python or Python to C++",
	Long: `Translates a source file between the C++ and Python subsets.

The source language is taken from --from or the file extension; the
target defaults to the other language. Without a file argument the
source is read from stdin.

Examples:
  kengen translate hello.cpp
  kengen translate --main hello.cpp -o hello.py
  kengen translate --from py --comment < script.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateFrom, "from", "f", "", "source language (cpp, python)")
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "target language (default: the other one)")
	translateCmd.Flags().BoolVar(&translateMain, "main", false, "keep main() behind a __main__ guard in Python output")
	translateCmd.Flags().IntVar(&translateIndent, "indent", 0, "spaces per indentation level (default from config)")
	translateCmd.Flags().BoolVar(&translateComment, "comment", false, "add short comments through the configured model endpoint")
	translateCmd.Flags().StringVarP(&translateOut, "out", "o", "", "write the result to a file instead of stdout")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	from, err := sourceLanguage(translateFrom, src)
	if err != nil {
		return err
	}
	to := other(from)
	if translateTo != "" {
		if to, err = translate.ParseLanguage(translateTo); err != nil {
			return err
		}
	}

	opts := translate.Options{
		UseMain:     appConfig.Translate.UseMain,
		IndentWidth: appConfig.Translate.IndentWidth,
	}
	if cmd.Flags().Changed("main") {
		opts.UseMain = translateMain
	}
	if translateIndent > 0 {
		opts.IndentWidth = translateIndent
	}

	tr := translate.New(opts, logger)
	res, err := tr.Translate(src.text, from, to)
	if res != nil {
		renderDiagnostics(cmd.ErrOrStderr(), src.name, res.Diagnostics)
	}
	if err != nil {
		if res != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), summary(res.Diagnostics))
			return errReported
		}
		return err
	}

	comment := appConfig.Augment.Enabled
	if cmd.Flags().Changed("comment") {
		comment = translateComment
	}
	if comment {
		client := augment.New(augment.FromConfig(appConfig.Augment))
		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Augment.Timeout.Duration)
		defer cancel()
		if err := tr.Annotate(ctx, res, client); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s comments skipped: %v\n", warningStyle.Render("warning:"), err)
		}
	}

	if translateOut != "" {
		if err := os.WriteFile(translateOut, []byte(res.Code), 0o644); err != nil {
			return err
		}
		logger.Info("translation written", "file", translateOut, "request_id", res.RequestID)
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), res.Code)
	return err
}
