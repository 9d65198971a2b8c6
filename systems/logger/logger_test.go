package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-home-io/panel/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests unknown provider.
func TestUnknownProvider(t *testing.T) {
	_, err := NewLoggerProvider(&ConstructLogger{Provider: "syslog"})
	_, ok := err.(*ErrUnknownProvider)
	assert.True(t, ok)
}

// Tests level filtering.
func TestLevelFilter(t *testing.T) {
	data := []struct {
		level    string
		expected []string
	}{
		{level: "debug", expected: []string{"Debug", "Info", "Warn", "Error"}},
		{level: "info", expected: []string{"Info", "Warn", "Error"}},
		{level: "warn", expected: []string{"Warn", "Error"}},
		{level: "error", expected: []string{"Error"}},
	}

	for _, v := range data {
		buf := &bytes.Buffer{}
		l, err := NewLoggerProvider(&ConstructLogger{
			Provider: ProviderJSON,
			Level:    v.level,
			Output:   buf,
		})
		require.NoError(t, err)

		l.Debug("Debug")
		l.Info("Info")
		l.Warn("Warn")
		l.Error("Error", errors.New("test"))
		l.Flush()

		got := make([]string, 0)
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			entry := make(map[string]string)
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			got = append(got, entry["msg"])
		}

		assert.Equal(t, v.expected, got, v.level)
	}
}

// Tests JSON entry fields.
func TestJSONFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewLoggerProvider(&ConstructLogger{
		Provider: ProviderJSON,
		NodeID:   "brave_turing",
		Output:   buf,
	})
	require.NoError(t, err)

	l.Warn("Connection lost", common.LogSystemToken, "panel", common.LogCycleToken, "3")

	entry := make(map[string]string)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "Connection lost", entry["msg"])
	assert.Equal(t, "panel", entry[common.LogSystemToken])
	assert.Equal(t, "3", entry[common.LogCycleToken])
	assert.Equal(t, "brave_turing", entry[common.LogNodeToken])
}

// Tests console provider.
func TestConsoleProvider(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewLoggerProvider(&ConstructLogger{
		Provider: ProviderConsole,
		NodeID:   "node",
		Output:   buf,
	})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "node: node")
}

// Tests loading log level.
func TestLogLevel(t *testing.T) {
	in := []struct {
		In       string
		Expected LogLevel
	}{
		{In: "warning", Expected: Warning},
		{In: "warn", Expected: Warning},
		{In: "error", Expected: Error},
		{In: "err", Expected: Error},
		{In: "debug", Expected: Debug},
		{In: "DBG", Expected: Debug},
		{In: "info", Expected: Info},
		{In: "incorrect", Expected: Info},
		{In: "", Expected: Info},
	}

	for _, v := range in {
		assert.Equal(t, v.Expected, getLogLevel(v.In), v.In)
	}
}
