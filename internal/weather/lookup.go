/*
PURPOSE:
  Resolves a raw city name to a weather record.

REQUIREMENTS:
  User-specified:
  - Case- and surrounding-whitespace-insensitive matching.
  - Unknown cities get the default record; never an error.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (cities)
  - Reads: the table in table.go

ERROR HANDLING:
  - None. Every input maps to a record.

IMPLEMENTATION RULES:
  - Pure functions only; the table is never written.

USAGE:
  rec := weather.Lookup("  New York ")
*/

package weather

import (
	"strings"

	"github.com/daryltucker/weather-summary/internal/model"
)

// Normalize trims surrounding whitespace and lowercases city.
// Punctuation is left alone: "st louis" and "st. louis" are different keys.
func Normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Resolve looks up city and reports whether the table had an entry for it.
// Unknown cities resolve to Default() with ok set to false.
func Resolve(city string) (rec model.WeatherRecord, ok bool) {
	rec, ok = table[Normalize(city)]
	if !ok {
		return defaultRecord, false
	}
	return rec, true
}

// Lookup returns the weather record for city, falling back to Default().
func Lookup(city string) model.WeatherRecord {
	rec, _ := Resolve(city)
	return rec
}
