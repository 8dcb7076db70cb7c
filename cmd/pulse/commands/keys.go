package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulseapm/pulseapm/pkg/config"
)

// settingHelp documents one recognized setting key.
type settingHelp struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Default string `json:"default"`
}

func recognizedSettings() []settingHelp {
	return []settingHelp{
		{config.EnvServerURLs, "comma-separated URL list", config.DefaultServerURL},
		{config.EnvSecretToken, "string", ""},
		{config.EnvCaptureHeaders, "boolean", fmt.Sprintf("%v", config.DefaultCaptureHeaders)},
		{config.EnvTransactionSampleRate, "rate [0,1]", fmt.Sprintf("%g", config.DefaultTransactionSampleRate)},
		{config.EnvLogLevel, "level", config.DefaultLogLevel.String()},
		{config.EnvMetricsInterval, "duration (min 1s, 0 disables)", config.DefaultMetricsInterval.String()},
		{config.EnvSpanFramesMinDuration, "duration", config.DefaultSpanFramesMinDuration.String()},
		{config.EnvStackTraceLimit, "integer", fmt.Sprintf("%d", config.DefaultStackTraceLimit)},
		{config.EnvServiceName, "string", "derived from caller"},
	}
}

func newKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List recognized configuration keys",
		Long: `List every environment key the agent recognizes, with its value
type and compiled-in default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := recognizedSettings()

			if jsonOutput {
				data, err := json.MarshalIndent(settings, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal keys: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			w := cmd.OutOrStdout()
			for _, s := range settings {
				fmt.Fprintf(w, "%-32s %-30s default: %s\n", s.Key, s.Type, s.Default)
			}
			return nil
		},
	}

	return cmd
}
