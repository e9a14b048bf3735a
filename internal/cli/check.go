package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcfix/internal/configloader"
	"github.com/yaklabco/srcfix/internal/logging"
	"github.com/yaklabco/srcfix/pkg/config"
	_ "github.com/yaklabco/srcfix/pkg/plugins/builtin" // Register built-in plugins
	"github.com/yaklabco/srcfix/pkg/reporter"
	"github.com/yaklabco/srcfix/pkg/runner"
)

// ErrCheckIssuesFound is returned when check issues are found.
var ErrCheckIssuesFound = errors.New("check issues found")

type checkFlags struct {
	format     string
	ignore     []string
	enable     []string
	disable    []string
	fixPlugins []string
	strict     bool
	noContext  bool
	compact    bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check source files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check source files for style and correctness issues.

By default, checks all supported source files in the current directory
and subdirectories. Specify paths to check specific files or directories.

Examples:
  srcfix check                   # Check current directory
  srcfix check src/              # Check src directory
  srcfix check main.js           # Check single file
  srcfix check --fix             # Check and auto-fix issues
  srcfix check --fix --dry-run   # Show fixes without applying
  srcfix check --format json     # Output as JSON for CI
  srcfix check --strict          # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.EnablePlugins = flags.enable
	cfg.DisablePlugins = flags.disable
	cfg.FixPlugins = flags.fixPlugins
	cfg.Strict = flags.strict

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldFormat, finalCfg.Format,
	)

	checkRunner := runner.New()

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Config:       finalCfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	// Dry-run output is only useful as diffs.
	if finalCfg.DryRun && format == reporter.FormatText {
		format = reporter.FormatDiff
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		FixMode:     finalCfg.Fix,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return ErrCheckIssuesFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "plugin IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "plugin IDs to disable")
	cmd.Flags().StringSliceVar(&flags.fixPlugins, "fix-plugins", nil, "limit auto-fix to specific plugin IDs")
	cmd.Flags().IntVar(&cfg.MaxFixAttempts, "max-fix-attempts", 0, "maximum fix commits per file (0 = default)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
