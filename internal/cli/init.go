package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcfix/internal/configloader"
	"github.com/yaklabco/srcfix/internal/logging"
	"github.com/yaklabco/srcfix/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new srcfix configuration file",
		Long: `Create a new .srcfix.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable/disable plugins,
change severities, and configure per-plugin options.

Examples:
  srcfix init                     Create .srcfix.yml
  srcfix init --output custom.yml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .srcfix.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".srcfix.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		switch {
		case flags.force:
			logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
		case configloader.IsInteractive():
			overwrite, err := configloader.ConfirmOverwrite(outputPath)
			if err != nil {
				return fmt.Errorf("confirm overwrite: %w", err)
			}
			if !overwrite {
				logger.Info("keeping existing file", logging.FieldPath, outputPath)
				return nil
			}
		default:
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
	}

	if err := configloader.WriteConfig(config.Default(), absPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'srcfix plugins' to see all available plugins")

	return nil
}
