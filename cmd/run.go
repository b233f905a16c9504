package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/clock25/internal/alarm"
	"github.com/abhisek/clock25/internal/app"
	"github.com/abhisek/clock25/internal/config"
	"github.com/abhisek/clock25/internal/logging/events"
	"github.com/abhisek/clock25/internal/timer"
)

// runApp resolves configuration, builds the engine and its alarm, and
// launches the TUI.
func runApp(cmd *cobra.Command) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cfg)
	events.App.Start(startPayload("tui", cfg))
	defer func() { events.App.Exit(err) }()

	engine, player := newEngine(cfg, bellWriter(cmd))
	defer player.Close()
	defer engine.Close()

	return app.Run(app.Options{Engine: engine})
}

// bellWriter is where the bell alarm rings. Bubble Tea renders to stdout,
// so the bell goes to stderr.
func bellWriter(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}

// newEngine builds an engine seeded from cfg with the configured alarm. The
// bell alarm writes to bell.
func newEngine(cfg config.Config, bell io.Writer, opts ...timer.Option) (*timer.Engine, alarm.Player) {
	// Validated by loadConfig.
	mode, _ := alarm.ParseMode(cfg.Alarm.Mode)
	player := alarm.Open(alarm.Options{
		Mode: mode,
		File: cfg.Alarm.File,
		Bell: bell,
	})
	opts = append([]timer.Option{
		timer.WithAlarm(player),
		timer.WithDefaults(cfg.Timer.BreakLength, cfg.Timer.SessionLength),
	}, opts...)
	engine := timer.New(opts...)
	return engine, player
}

func startPayload(mode string, cfg config.Config) map[string]any {
	return map[string]any{
		"mode":           mode,
		"version":        version,
		"break_length":   cfg.Timer.BreakLength,
		"session_length": cfg.Timer.SessionLength,
		"alarm":          cfg.Alarm.Mode,
	}
}
