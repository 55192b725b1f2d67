/*
PURPOSE:
  Writes weather reports to CSV.
  The header is written once, at construction.

REQUIREMENTS:
  Implementation-discovered:
  - Spreadsheet-friendly export of the report.
  - Flush after every row so partial output survives an early exit.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Report

ERROR HANDLING:
  - Returns error on header or row write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Mutex-guarded; safe to share.

USAGE:
  w, err := output.NewCSVWriter(os.Stdout)
  w.Write(report)

MAINTENANCE:
  - Update header and Write() mapping when Report changes.
*/

package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"github.com/daryltucker/weather-summary/internal/model"
)

var csvHeader = []string{"city", "temperature_f", "condition", "humidity_pct", "matched"}

// CSVWriter handles writing reports as CSV rows.
type CSVWriter struct {
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter and writes the header row.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{writer: cw}, nil
}

// Write writes a single report row. It is thread-safe.
func (cw *CSVWriter) Write(r model.Report) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.City,
		strconv.Itoa(r.TemperatureF),
		string(r.Condition),
		strconv.Itoa(r.HumidityPct),
		strconv.FormatBool(r.Matched),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}
