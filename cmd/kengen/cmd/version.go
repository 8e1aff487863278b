package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Arking-xx/College-Thesis/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintf(out, "  C++ frontend:    %s\n", version.ComponentVersion("cpp"))
		fmt.Fprintf(out, "  Python frontend: %s\n", version.ComponentVersion("python"))
		fmt.Fprintf(out, "  Augment client:  %s\n", version.ComponentVersion("augment"))
		fmt.Fprintf(out, "  Go Version:      %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:         %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
