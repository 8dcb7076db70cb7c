package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulseapm/pulseapm/pkg/config"
	"github.com/pulseapm/pulseapm/pkg/telemetry"
)

// effectiveConfig is the printable projection of a resolved configuration.
// The secret token is reported as present/absent, never echoed.
type effectiveConfig struct {
	ServerURLs            []string `json:"server_urls"`
	SecretTokenSet        bool     `json:"secret_token_set"`
	CaptureHeaders        bool     `json:"capture_headers"`
	TransactionSampleRate float64  `json:"transaction_sample_rate"`
	LogLevel              string   `json:"log_level"`
	MetricsInterval       string   `json:"metrics_interval"`
	SpanFramesMinDuration string   `json:"span_frames_min_duration"`
	StackTraceLimit       int      `json:"stack_trace_limit"`
	ServiceName           string   `json:"service_name"`
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Resolve and print the effective agent configuration",
		Long: `Resolve the agent configuration from the current environment and
print the effective, typed values.

Malformed values are reported on stderr and replaced with their
defaults, exactly as the agent would do at startup.`,
		Example: `  # Print the effective configuration
  pulse config

  # Print as JSON
  pulse config --json

  # Show fallback diagnostics for defaulted settings
  pulse config --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if verbose {
				level = "debug"
			}
			logger, err := telemetry.NewLogger(telemetry.LoggingConfig{
				Level:  level,
				Format: "console",
				Output: "stderr",
			})
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			reader := config.NewReader(config.ReaderOptions{Logger: logger})
			cfg := reader.Resolve()

			out := effectiveConfig{
				SecretTokenSet:        cfg.SecretToken != "",
				CaptureHeaders:        cfg.CaptureHeaders,
				TransactionSampleRate: cfg.TransactionSampleRate,
				LogLevel:              cfg.LogLevel.String(),
				MetricsInterval:       cfg.MetricsInterval.String(),
				SpanFramesMinDuration: cfg.SpanFramesMinDuration.String(),
				StackTraceLimit:       cfg.StackTraceLimit,
				ServiceName:           cfg.ServiceName,
			}
			for _, u := range cfg.ServerURLs {
				out.ServerURLs = append(out.ServerURLs, u.String())
			}

			if jsonOutput {
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal configuration: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Service name:             %s\n", out.ServiceName)
			for i, u := range out.ServerURLs {
				if i == 0 {
					fmt.Fprintf(w, "Server URLs:              %s\n", u)
					continue
				}
				fmt.Fprintf(w, "                          %s\n", u)
			}
			fmt.Fprintf(w, "Secret token set:         %v\n", out.SecretTokenSet)
			fmt.Fprintf(w, "Capture headers:          %v\n", out.CaptureHeaders)
			fmt.Fprintf(w, "Transaction sample rate:  %g\n", out.TransactionSampleRate)
			fmt.Fprintf(w, "Log level:                %s\n", out.LogLevel)
			if cfg.MetricsInterval == 0 {
				fmt.Fprintf(w, "Metrics interval:         disabled\n")
			} else {
				fmt.Fprintf(w, "Metrics interval:         %s\n", out.MetricsInterval)
			}
			fmt.Fprintf(w, "Span frames min duration: %s\n", out.SpanFramesMinDuration)
			fmt.Fprintf(w, "Stack trace limit:        %d\n", out.StackTraceLimit)
			return nil
		},
	}

	return cmd
}
