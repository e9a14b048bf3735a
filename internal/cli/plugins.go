package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcfix/internal/logging"
	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/plugin"
	_ "github.com/yaklabco/srcfix/pkg/plugins/builtin" // Register built-in plugins
)

type pluginsFlags struct {
	format string
}

const formatJSON = "json"

// pluginInfo represents a plugin in JSON output.
type pluginInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Fixable     bool   `json:"fixable"`
}

func newPluginsCommand() *cobra.Command {
	flags := &pluginsFlags{}

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List available plugins",
		Long: `List all registered plugins with their IDs, descriptions,
default severity, and whether they support auto-fixing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			plugins := plugin.DefaultRegistry.Plugins()

			if flags.format == formatJSON {
				return outputPluginsJSON(plugins)
			}

			logger := logging.NewInteractive()

			if len(plugins) == 0 {
				logger.Info("no plugins registered")
				return nil
			}

			logger.Info("available plugins")

			for _, p := range plugins {
				fixable := "-"
				if _, ok := p.(plugin.Fixer); ok {
					fixable = "yes"
				}

				logger.Info(p.ID(),
					logging.FieldSeverity, pluginSeverity(p),
					logging.FieldFixable, fixable,
					logging.FieldDescription, p.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// pluginSeverity returns the plugin's declared severity or the global
// default when the plugin does not declare one.
func pluginSeverity(p plugin.Plugin) config.Severity {
	if ds, ok := p.(plugin.DefaultSeverity); ok {
		return ds.DefaultSeverity()
	}
	return config.SeverityWarning
}

// outputPluginsJSON outputs plugins as a JSON array.
func outputPluginsJSON(plugins []plugin.Plugin) error {
	infos := make([]pluginInfo, 0, len(plugins))
	for _, p := range plugins {
		_, fixable := p.(plugin.Fixer)
		infos = append(infos, pluginInfo{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			Severity:    string(pluginSeverity(p)),
			Fixable:     fixable,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding plugins: %w", err)
	}
	return nil
}
