/*
PURPOSE:
  Renders a weather report as a short, colored block for humans.

REQUIREMENTS:
  User-specified:
  - Title line plus City, Temperature, Condition and Humidity.
  - City is shown exactly as typed.

  Implementation-discovered:
  - Color is optional: pipes, CI logs and tests get plain text.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Dependencies: github.com/fatih/color

IMPLEMENTATION RULES:
  - Every color.Color is forced on or off explicitly so output does not
    depend on the global TTY detection once the writer is built.

USAGE:
  w := output.NewTextWriter(os.Stdout, true)
  w.Write(report)
*/

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/model"
)

const textTitle = "Weather Summary"

type textStyles struct {
	title       *color.Color
	label       *color.Color
	city        *color.Color
	temperature *color.Color
	condition   *color.Color
	humidity    *color.Color
}

func newTextStyles(colorize bool) textStyles {
	s := textStyles{
		title:       color.New(color.Bold, color.Underline),
		label:       color.New(color.FgCyan),
		city:        color.New(color.FgGreen),
		temperature: color.New(color.FgYellow),
		condition:   color.New(color.FgMagenta),
		humidity:    color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{s.title, s.label, s.city, s.temperature, s.condition, s.humidity} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// TextWriter writes reports as labeled lines.
type TextWriter struct {
	w      io.Writer
	styles textStyles
}

// NewTextWriter creates a TextWriter. colorize toggles ANSI styling.
func NewTextWriter(w io.Writer, colorize bool) *TextWriter {
	return &TextWriter{w: w, styles: newTextStyles(colorize)}
}

// Write renders r.
func (tw *TextWriter) Write(r model.Report) error {
	s := tw.styles
	_, err := fmt.Fprintf(tw.w, "%s\n%s %s\n%s %s\n%s %s\n%s %s\n",
		s.title.Sprint(textTitle),
		s.label.Sprint("City:"), s.city.Sprint(r.City),
		s.label.Sprint("Temperature:"), s.temperature.Sprintf("%d°F", r.TemperatureF),
		s.label.Sprint("Condition:"), s.condition.Sprint(r.Condition),
		s.label.Sprint("Humidity:"), s.humidity.Sprintf("%d%%", r.HumidityPct),
	)
	return err
}

// ColorEnabled resolves a color mode (auto, always, never) to a yes/no.
// auto defers to fatih/color's TTY and NO_COLOR detection for stdout.
func ColorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}
