package config

import (
	"strconv"
	"strings"
)

const (
	envConfig    = "CLOCK25_CONFIG"
	envBreak     = "CLOCK25_BREAK"
	envSession   = "CLOCK25_SESSION"
	envAlarm     = "CLOCK25_ALARM"
	envAlarmFile = "CLOCK25_ALARM_FILE"
	envLogFile   = "CLOCK25_LOG_FILE"
	envTrace     = "CLOCK25_TRACE"
)

// ApplyEnv overlays CLOCK25_* variables from environ onto cfg. Values that
// do not parse are ignored.
func ApplyEnv(cfg Config, environ []string) Config {
	env := parseEnv(environ)

	cfg.Timer.BreakLength = envOrInt(env, envBreak, cfg.Timer.BreakLength)
	cfg.Timer.SessionLength = envOrInt(env, envSession, cfg.Timer.SessionLength)
	cfg.Alarm.Mode = envOrDefault(env, envAlarm, cfg.Alarm.Mode)
	cfg.Alarm.File = envOrDefault(env, envAlarmFile, cfg.Alarm.File)
	cfg.Logging.FilePath = envOrDefault(env, envLogFile, cfg.Logging.FilePath)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)
	return cfg
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}
