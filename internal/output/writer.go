/*
PURPOSE:
  Picks the report writer for a configured output format.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Returns: TextWriter, JSONWriter, CSVWriter or YAMLWriter

ERROR HANDLING:
  - Unknown formats return an error wrapping ErrUnknownFormat.

IMPLEMENTATION RULES:
  - Format names come from internal/config constants.

MAINTENANCE:
  - Add a case here and in config.Validate() for each new format.
*/

package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/model"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Writer renders reports.
type Writer interface {
	Write(r model.Report) error
}

// NewWriter returns the Writer for format. colorize only affects text.
func NewWriter(format string, w io.Writer, colorize bool) (Writer, error) {
	switch format {
	case config.FormatText:
		return NewTextWriter(w, colorize), nil
	case config.FormatJSON:
		return NewJSONWriter(w), nil
	case config.FormatCSV:
		cw, err := NewCSVWriter(w)
		if err != nil {
			return nil, err
		}
		return cw, nil
	case config.FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
