package engine

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/model"
	"github.com/daryltucker/weather-summary/internal/output"
)

func plainConfig(format string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Format = format
	cfg.Color = config.ColorNever
	return cfg
}

func TestRun_TextScenarios(t *testing.T) {
	tests := []struct {
		name string
		city string
		want []string
	}{
		{"new york", "New York", []string{"City: New York", "72°F", "Partly Cloudy", "58%"}},
		{"seattle", "seattle", []string{"City: seattle", "60°F", "Light Rain", "72%"}},
		{"unknown city", "Nowhere", []string{"City: Nowhere", "70°F", "Fair", "55%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Run(plainConfig(config.FormatText), tt.city, &buf))

			out := buf.String()
			assert.Contains(t, out, "Weather Summary")
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(plainConfig(config.FormatJSON), "  Chicago ", &buf))

	var got model.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, model.Report{
		City:         "  Chicago ",
		TemperatureF: 65,
		Condition:    model.ConditionWindy,
		HumidityPct:  50,
		Matched:      true,
	}, got)
}

func TestRun_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Run(plainConfig("xml"), "Seattle", &buf)
	assert.ErrorIs(t, err, output.ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestSummarize(t *testing.T) {
	prev := output.Logger
	defer output.SetLogger(prev)
	var logs bytes.Buffer
	output.Configure(&logs, slog.LevelDebug)

	rep := Summarize("Atlantis")
	assert.False(t, rep.Matched)
	assert.Equal(t, "Atlantis", rep.City)
	assert.Equal(t, 70, rep.TemperatureF)
	assert.Contains(t, logs.String(), "key=atlantis")

	rep = Summarize("ST. LOUIS")
	assert.True(t, rep.Matched)
	assert.Equal(t, model.ConditionHumid, rep.Condition)
}
