// Package cli provides the Cobra command structure for srcfix.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/srcfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root srcfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "srcfix",
		Short: "A pluggable static-analysis engine that fixes what it finds",
		Long: `srcfix runs pluggable analyzers over source files and applies their
proposed fixes safely.

Plugins report diagnostics and propose candidate edits; srcfix merges
candidates from independent plugins without overlap, re-analyzes after each
committed pass, and writes each file back at most once. Dry-run mode shows
the resulting change as a unified diff without touching the file system.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newPluginsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
