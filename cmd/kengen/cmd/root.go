package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arking-xx/College-Thesis/pkg/core/config"
	"github.com/Arking-xx/College-Thesis/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    *logging.Logger
)

// errReported marks failures whose details were already printed
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "kengen",
	Short: "KENGEN - C++/Python subset translator",
	Long: `KENGEN translates between a small subset of C++ and a small
subset of Python. Both directions run tokenizer, parser, semantic
analysis and code generation; semantic errors stop a translation,
warnings are reported alongside the generated code.

Commands:
  translate  - translate a source file
  check      - run semantic analysis only
  tokens     - print the token stream
  parse      - dump the syntax tree as JSON or YAML`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $KENGEN_CONFIG, ./kengen.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig("kengen", appConfig.General)
	if verbose {
		lc.Level = "debug"
	}
	lc.Output = cmd.ErrOrStderr()
	logger = logging.Wrap(logging.NewLogger(lc), "kengen")
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errorStyle.Render("error:"), err)
}
