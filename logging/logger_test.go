package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = NoOpLogger{}
	_ Logger = (*SimLogger)(nil)
)

func newBufferedLogger(level LogLevel) (*SimLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: level, Format: "json", Output: &buf})
	return l, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		lines = append(lines, m)
	}
	return lines
}

func TestSimLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferedLogger(LogLevelWarn)

	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn msg", lines[0]["msg"])
	assert.Equal(t, "error msg", lines[1]["msg"])
}

func TestSimLogger_WithComponent(t *testing.T) {
	l, buf := newBufferedLogger(LogLevelInfo)

	l.WithComponent("store").Info("state replaced", "state_version", 3)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "store", lines[0]["component"])
	assert.Equal(t, float64(3), lines[0]["state_version"])
}

func TestSimLogger_DomainHelpers(t *testing.T) {
	l, buf := newBufferedLogger(LogLevelDebug)

	l.LogSynthesis(1, 6, 42, time.Millisecond)
	l.LogTick(2, 0, time.Millisecond, nil)
	l.LogTick(2, 0, time.Millisecond, errors.New("boom"))
	l.LogAgentRun("info", 2, time.Millisecond, nil)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)
	assert.Equal(t, "Network synthesized", lines[0]["msg"])
	assert.Equal(t, "Tick committed", lines[1]["msg"])
	assert.Equal(t, "Tick discarded", lines[2]["msg"])
	assert.Equal(t, "ERROR", lines[2]["level"])
	assert.Equal(t, "Agent run completed", lines[3]["msg"])
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
}
