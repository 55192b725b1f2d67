/*
PURPOSE:
  High-level runner for a single weather-summary invocation.
  Resolves the city, builds the report and hands it to the configured writer.

REQUIREMENTS:
  User-specified:
  - Unknown cities are not an error; they get the default record.

  Implementation-discovered:
  - Debug logging of the normalized key and whether the table matched
    makes "why did I get 70°F?" answerable with --verbose.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/weather, internal/output, internal/config

ERROR HANDLING:
  - Lookup never fails. Only writer construction/write errors are returned.

IMPLEMENTATION RULES:
  - Logic: Resolve -> Report -> Writer.Write.
  - No styling here; internal/output owns presentation.

USAGE:
  engine.Run(cfg, "New York", os.Stdout)

RELATED FILES:
  - internal/weather/lookup.go
  - internal/output/writer.go
*/

package engine

import (
	"fmt"
	"io"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/model"
	"github.com/daryltucker/weather-summary/internal/output"
	"github.com/daryltucker/weather-summary/internal/weather"
)

// Summarize resolves city into a report. It never fails.
func Summarize(city string) model.Report {
	rec, ok := weather.Resolve(city)
	if !ok {
		output.Logger.Debug("City not in table, using default record", "city", city, "key", weather.Normalize(city))
	} else {
		output.Logger.Debug("Resolved city", "city", city, "key", weather.Normalize(city))
	}
	return model.NewReport(city, rec, ok)
}

// Run writes the weather report for city to w in the configured format.
func Run(cfg *config.Config, city string, w io.Writer) error {
	writer, err := output.NewWriter(cfg.Format, w, output.ColorEnabled(cfg.Color))
	if err != nil {
		return err
	}

	report := Summarize(city)
	output.Logger.Debug("Writing report", "format", cfg.Format, "matched", report.Matched)

	if err := writer.Write(report); err != nil {
		return fmt.Errorf("failed to write %s report: %w", cfg.Format, err)
	}
	return nil
}
