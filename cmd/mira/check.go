package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"mira/internal/diagfmt"
	"mira/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.mira...",
	Short: "Parse and type-check mira source files",
	Long:  `Check parses and type-checks each file and reports diagnostics without running anything`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", runtime.NumCPU(), "number of files checked concurrently")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	results, err := driver.CheckFiles(cmd.Context(), args, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	opts := diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowContext: true,
	}
	failed := 0
	for _, res := range results {
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
		}
		if res.Bag.HasErrors() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
