/*
PURPOSE:
  Defines the 'cities' subcommand.
  Lists the cities that have their own simulated weather.

REQUIREMENTS:
  Implementation-discovered:
  - Users need a way to see which names match without reading source.
  - Must not require --city (that flag belongs to the root command).

ARCHITECTURE INTEGRATION:
  - Calls: internal/weather.Cities(), internal/weather.Lookup()

ERROR HANDLING:
  - Returns the first write error.

IMPLEMENTATION RULES:
  - Simple output to stdout, one "- name" line per city.

USAGE:
  weather-summary cities

RELATED FILES:
  - internal/weather/table.go
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/weather-summary/internal/weather"
)

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities with simulated weather",
		Long: `Lists the cities in the built-in weather table, as matched after trimming and
lowercasing. Any other city gets the default record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, city := range weather.Cities() {
				rec := weather.Lookup(city)
				if _, err := fmt.Fprintf(out, "- %s (%d°F, %s, %d%%)\n", city, rec.TemperatureF, rec.Condition, rec.HumidityPct); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
