package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mira/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mira",
	Short: "Mira language toolchain",
	Long:  `Mira is a small expression language with an interactive session built around name completion`,
	Args:  cobra.NoArgs,
	// Bare "mira" on a terminal drops into the session.
	RunE: func(cmd *cobra.Command, args []string) error {
		if isTerminal(os.Stdin) {
			return runRepl(replCmd, nil)
		}
		return cmd.Help()
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against whether out is a terminal.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
