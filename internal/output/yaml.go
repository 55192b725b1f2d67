/*
PURPOSE:
  Writes weather reports as YAML documents.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Report
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns marshal and write errors.

IMPLEMENTATION RULES:
  - Keys follow the yaml struct tags in internal/model.
  - Documents after the first are separated by "---".
*/

package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/weather-summary/internal/model"
)

// YAMLWriter writes each report as its own YAML document.
type YAMLWriter struct {
	w       io.Writer
	written bool
}

// NewYAMLWriter creates a new YAMLWriter.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w}
}

// Write marshals r. Reports after the first are preceded by a "---" separator.
func (yw *YAMLWriter) Write(r model.Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	if yw.written {
		if _, err := io.WriteString(yw.w, "---\n"); err != nil {
			return err
		}
	}
	if _, err := yw.w.Write(data); err != nil {
		return err
	}
	yw.written = true
	return nil
}
