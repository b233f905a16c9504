package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetTraceEnabled(false)
	})
	return &buf
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	buf := capture(t)
	SetTraceEnabled(false)

	Trace("timer.command", map[string]any{"name": "toggle"})

	assert.Empty(t, buf.String())
}

func TestTraceWritesJSONEntry(t *testing.T) {
	buf := capture(t)
	SetTraceEnabled(true)

	Trace("timer.command", map[string]any{"name": "toggle"})

	var entry struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "timer.command", entry.Event)
	assert.Equal(t, "toggle", entry.Payload["name"])
}

func TestErrorIgnoresNil(t *testing.T) {
	buf := capture(t)
	Error(nil)
	assert.Empty(t, buf.String())
}

func TestErrorAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clock25.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("speaker unavailable"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "speaker unavailable"))
}
