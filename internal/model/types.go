/*
PURPOSE:
  Defines the core data structures used throughout weather-summary.
  A WeatherRecord is a row of the simulated weather table; a Report is
  what gets handed to the output writers.

REQUIREMENTS:
  User-specified:
  - Temperature in Fahrenheit, a short condition text, humidity percentage.
  - The report shows the city exactly as the user typed it.

  Implementation-discovered:
  - JSON/YAML tags so the structured formats share key names.

ARCHITECTURE INTEGRATION:
  - Used by: internal/weather, internal/engine, internal/output

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Value types only. Records are copied, never shared by pointer.

USAGE:
  rep := model.NewReport("New York", rec, true)

RELATED FILES:
  - internal/weather/table.go
  - internal/output/csv.go

MAINTENANCE:
  - Update the CSV header in internal/output when Report gains a field.
*/

package model

// Condition is a short human-readable description of the weather.
type Condition string

const (
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionSunny        Condition = "Sunny"
	ConditionWindy        Condition = "Windy"
	ConditionHumid        Condition = "Humid"
	ConditionLightRain    Condition = "Light Rain"
	ConditionFair         Condition = "Fair"
)

// WeatherRecord is a single simulated weather observation.
type WeatherRecord struct {
	TemperatureF int       `json:"temperature_f" yaml:"temperature_f"`
	Condition    Condition `json:"condition" yaml:"condition"`
	HumidityPct  int       `json:"humidity_pct" yaml:"humidity_pct"` // 0-100
}

// Report is a resolved weather record for the city the user asked about.
type Report struct {
	City         string    `json:"city" yaml:"city"` // as supplied, not normalized
	TemperatureF int       `json:"temperature_f" yaml:"temperature_f"`
	Condition    Condition `json:"condition" yaml:"condition"`
	HumidityPct  int       `json:"humidity_pct" yaml:"humidity_pct"`
	Matched      bool      `json:"matched" yaml:"matched"` // false when the default record was used
}

// NewReport builds a Report from the raw city string and its resolved record.
func NewReport(city string, rec WeatherRecord, matched bool) Report {
	return Report{
		City:         city,
		TemperatureF: rec.TemperatureF,
		Condition:    rec.Condition,
		HumidityPct:  rec.HumidityPct,
		Matched:      matched,
	}
}
