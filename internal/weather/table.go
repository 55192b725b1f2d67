// Package weather resolves city names to simulated weather records.
//
// The table is fixed at compile time and never mutated, so every function in
// this package is safe to call from multiple goroutines.
package weather

import (
	"sort"

	"github.com/daryltucker/weather-summary/internal/model"
)

// Keys are stored already normalized (see Normalize).
var table = map[string]model.WeatherRecord{
	"new york":    {TemperatureF: 72, Condition: model.ConditionPartlyCloudy, HumidityPct: 58},
	"los angeles": {TemperatureF: 81, Condition: model.ConditionSunny, HumidityPct: 30},
	"chicago":     {TemperatureF: 65, Condition: model.ConditionWindy, HumidityPct: 50},
	"st. louis":   {TemperatureF: 74, Condition: model.ConditionHumid, HumidityPct: 64},
	"seattle":     {TemperatureF: 60, Condition: model.ConditionLightRain, HumidityPct: 72},
}

var defaultRecord = model.WeatherRecord{
	TemperatureF: 70,
	Condition:    model.ConditionFair,
	HumidityPct:  55,
}

// Default returns the record used for cities missing from the table.
func Default() model.WeatherRecord {
	return defaultRecord
}

// Cities returns the known normalized city names in sorted order.
// The slice is a fresh copy.
func Cities() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
