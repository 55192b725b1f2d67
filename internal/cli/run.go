/*
PURPOSE:
  Summary logic of the root command: flag overrides, validation, engine call.

REQUIREMENTS:
  User-specified:
  - --city/-c is required.
  - Report goes to stdout.

  Implementation-discovered:
  - --format and --color override the config file only when set explicitly.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if validation fails or the report cannot be written.

IMPLEMENTATION RULES:
  - Logic: Config (from setup) -> Override -> Validate -> Engine.Run.

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/engine"
)

func addSummaryFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.city, "city", "c", "", "City name to get the (simulated) weather for")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText,
		fmt.Sprintf("Output format (%s)", strings.Join(config.Formats, ", ")))
	cmd.Flags().StringVar(&opts.color, "color", config.ColorAuto, "Colorize text output (auto, always, never)")

	// Only fails for unknown flag names.
	_ = cmd.MarkFlagRequired("city")
}

func runSummary(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg

	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = opts.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return engine.Run(cfg, opts.city, cmd.OutOrStdout())
}
