/*
PURPOSE:
  Writes weather reports as JSON Lines (one object per line).
  Meant for jq and other machine consumers.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Report

ERROR HANDLING:
  - Returns the encoder's write error.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.
*/

package output

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/daryltucker/weather-summary/internal/model"
)

// JSONWriter handles writing reports as JSON lines.
type JSONWriter struct {
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{encoder: enc}
}

// Write writes a single report as a JSON line.
func (jw *JSONWriter) Write(r model.Report) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(r)
}
