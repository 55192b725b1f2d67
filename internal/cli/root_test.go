package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/model"
	"github.com/daryltucker/weather-summary/internal/output"
)

// execute runs a fresh command tree and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	prev := output.Logger
	t.Cleanup(func() { output.SetLogger(prev) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"new york", []string{"--city", "New York"}, []string{"City: New York", "72°F", "Partly Cloudy", "58%"}},
		{"seattle short flag", []string{"-c", "seattle"}, []string{"City: seattle", "60°F", "Light Rain", "72%"}},
		{"unknown city", []string{"--city=Nowhere"}, []string{"City: Nowhere", "70°F", "Fair", "55%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, append(tt.args, "--color", "never")...)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Weather Summary")
			for _, s := range tt.want {
				assert.Contains(t, stdout, s)
			}
			assert.Empty(t, stderr)
		})
	}
}

func TestRoot_MissingCity(t *testing.T) {
	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "city" not set`)
	assert.Contains(t, stdout, "Usage:")
	assert.NotContains(t, stdout, "Weather Summary")
}

func TestRoot_MissingCityReportedBeforeConfig(t *testing.T) {
	stdout, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "city" not set`)
	assert.NotErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, stdout, "Usage:")
}

func TestRoot_Help(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, err := execute(t, arg)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Usage:")
			assert.Contains(t, stdout, "--city")
			assert.Contains(t, stdout, "-c, --city")
			assert.NotContains(t, stdout, "Weather Summary")
		})
	}
}

func TestRoot_UnexpectedArgument(t *testing.T) {
	_, _, err := execute(t, "--city", "Chicago", "extra")
	require.Error(t, err)
}

func TestRoot_JSONFormat(t *testing.T) {
	stdout, _, err := execute(t, "-c", "ST. LOUIS", "-f", "json")
	require.NoError(t, err)

	var got model.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "ST. LOUIS", got.City)
	assert.Equal(t, 74, got.TemperatureF)
	assert.Equal(t, model.ConditionHumid, got.Condition)
	assert.True(t, got.Matched)
}

func TestRoot_InvalidFormat(t *testing.T) {
	stdout, _, err := execute(t, "-c", "Chicago", "--format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
	assert.NotContains(t, stdout, "Usage:", "runtime errors do not print usage")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather_summary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\ncolor: never\n"), 0644))

	stdout, _, err := execute(t, "--config", path, "-c", "Los Angeles")
	require.NoError(t, err)
	assert.Equal(t, "city,temperature_f,condition,humidity_pct,matched\nLos Angeles,81,Sunny,30,true\n", stdout)

	// Explicit flags win over the file.
	stdout, _, err = execute(t, "--config", path, "-c", "Los Angeles", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Temperature: 81°F")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "-c", "Chicago")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_Verbose(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "-c", "Atlantis", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "70°F")
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "key=atlantis")
	assert.NotContains(t, stdout, "level=")
}

func TestCities(t *testing.T) {
	stdout, _, err := execute(t, "cities")
	require.NoError(t, err, "cities does not need --city")

	want := "- chicago (65°F, Windy, 50%)\n" +
		"- los angeles (81°F, Sunny, 30%)\n" +
		"- new york (72°F, Partly Cloudy, 58%)\n" +
		"- seattle (60°F, Light Rain, 72%)\n" +
		"- st. louis (74°F, Humid, 64%)\n"
	assert.Equal(t, want, stdout)
}
