package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeLines(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerTagsComponentAndChart(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf, Component: "render"})
	require.NoError(t, err)

	log.ForChart("Jobs per day").WithFields(map[string]any{"points": 3}).Info("wrote svg")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "wrote svg", entries[0]["message"])
	assert.Equal(t, "render", entries[0]["component"])
	assert.Equal(t, "Jobs per day", entries[0]["chart"])
	assert.Equal(t, float64(3), entries[0]["points"])
	assert.Equal(t, "info", entries[0]["level"])
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  []string
	}{
		{level: "", want: []string{"info", "warn", "error"}},
		{level: "DEBUG", want: []string{"debug", "info", "warn", "error"}},
		{level: " warn ", want: []string{"warn", "error"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log, err := New(Options{Level: tt.level, Writer: buf})
			require.NoError(t, err)

			log.Debug("d")
			log.Info("i")
			log.Warn("w")
			log.Error(nil, "e")

			var got []string
			for _, entry := range decodeLines(t, buf) {
				got = append(got, entry["level"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log level "chatty"`)
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.With("path", "charts.yaml").Error(errors.New("disk full"), "svg export failed")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0]["error"])
	assert.Equal(t, "charts.yaml", entries[0]["path"])
}

func TestLoggerConsoleOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf, HumanReadable: true})
	require.NoError(t, err)

	log.Warn("chart mixes simple and grouped points")
	assert.Contains(t, buf.String(), "chart mixes simple and grouped points")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNilAndNopLoggersDiscard(t *testing.T) {
	t.Parallel()

	var log *Logger
	assert.NotPanics(t, func() {
		log.ForChart("x").WithFields(map[string]any{"a": 1}).Info("ignored")
		log.Error(errors.New("boom"), "ignored")
	})
	assert.Nil(t, log.With("k", "v"))

	assert.NotPanics(t, func() { Nop().ForChart("x").Warn("ignored") })
}
