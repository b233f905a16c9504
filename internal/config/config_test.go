package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Timer.BreakLength)
	assert.Equal(t, 25, cfg.Timer.SessionLength)
	assert.Equal(t, "speaker", cfg.Alarm.Mode)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"timer": {"session_length": 50}, "alarm": {"mode": "bell"}}`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Timer.BreakLength)
	assert.Equal(t, 50, cfg.Timer.SessionLength)
	assert.Equal(t, "bell", cfg.Alarm.Mode)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"length too large", `{"timer": {"break_length": 61}}`},
		{"length zero", `{"timer": {"session_length": 0}}`},
		{"fractional length", `{"timer": {"session_length": 2.5}}`},
		{"unknown mode", `{"alarm": {"mode": "siren"}}`},
		{"unknown field", `{"theme": "dark"}`},
		{"wrong type", `{"logging": {"trace": "yes"}}`},
		{"not an object", `[]`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	environ := []string{
		"CLOCK25_BREAK=10",
		"CLOCK25_SESSION=45",
		"CLOCK25_ALARM=off",
		"CLOCK25_ALARM_FILE=/tmp/beep.wav",
		"CLOCK25_LOG_FILE=/tmp/clock25.log",
		"CLOCK25_TRACE=true",
		"UNRELATED=1",
		"malformed",
	}

	cfg := ApplyEnv(Default(), environ)

	assert.Equal(t, 10, cfg.Timer.BreakLength)
	assert.Equal(t, 45, cfg.Timer.SessionLength)
	assert.Equal(t, "off", cfg.Alarm.Mode)
	assert.Equal(t, "/tmp/beep.wav", cfg.Alarm.File)
	assert.Equal(t, "/tmp/clock25.log", cfg.Logging.FilePath)
	assert.True(t, cfg.Logging.Trace)
}

func TestApplyEnvIgnoresBadValues(t *testing.T) {
	cfg := ApplyEnv(Default(), []string{"CLOCK25_BREAK=ten", "CLOCK25_TRACE=maybe", "CLOCK25_ALARM= "})
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Timer.BreakLength = 0
	assert.ErrorContains(t, Validate(cfg), "break length")

	cfg = Default()
	cfg.Timer.SessionLength = 61
	assert.ErrorContains(t, Validate(cfg), "session length")

	cfg = Default()
	cfg.Alarm.Mode = "loud"
	assert.ErrorContains(t, Validate(cfg), "alarm mode")
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Default()
	want.Timer.SessionLength = 30
	want.Logging.Trace = true

	require.NoError(t, Write(path, want))
	got, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("CLOCK25_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "clock25", "config.json"), p)

	t.Setenv("CLOCK25_CONFIG", "/etc/clock25.json")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/clock25.json", p)
}
