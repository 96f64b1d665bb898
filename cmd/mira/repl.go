package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mira/internal/repl"
	"mira/internal/replcfg"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Repl starts an interactive session with history and tab completion over everything declared so far`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().Bool("no-history", false, "do not load or save history")
	replCmd.Flags().String("config", "", "path to mira.toml (default: search upward from cwd)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg replcfg.Config
	var err error
	if configPath != "" {
		cfg, err = replcfg.LoadFile(configPath)
	} else {
		cfg, err = replcfg.Load(".")
	}
	if err != nil {
		return err
	}

	historyPath := ""
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		historyPath = cfg.Repl.HistoryFile
		if historyPath == "" {
			historyPath, err = repl.DefaultHistoryPath("mira")
			if err != nil {
				return fmt.Errorf("failed to resolve history path: %w", err)
			}
		}
	}

	color := useColor(cmd, os.Stdout)
	switch cfg.Repl.Color {
	case "always":
		color = true
	case "never":
		color = false
	}

	session, err := repl.NewSession(repl.Options{
		Config:      cfg,
		HistoryPath: historyPath,
		Input:       os.Stdin,
		Output:      os.Stdout,
		Color:       color,
	})
	if err != nil {
		return err
	}
	return session.Run()
}
