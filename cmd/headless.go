package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/clock25/internal/logging/events"
	"github.com/abhisek/clock25/internal/timer"
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the countdown without the TUI, printing one line per event",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cycles, _ := cmd.Flags().GetInt("cycles")
		if cycles < 0 {
			return fmt.Errorf("--cycles must not be negative (got %d)", cycles)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		setupLogging(cfg)
		events.App.Start(startPayload("headless", cfg))
		defer func() { events.App.Exit(err) }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		engine, player := newEngine(cfg, bellWriter(cmd))
		defer player.Close()
		defer engine.Close()

		engine.Toggle()
		return runHeadless(ctx, engine.Events(), cmd.OutOrStdout(), cycles)
	},
}

func init() {
	headlessCmd.Flags().Int("cycles", 0, "Stop after this many phase changes (0 runs until interrupted)")
}

// runHeadless prints each event from evs until ctx is done, the channel
// closes, or cycles exhaustions have been seen. Zero cycles means no limit.
func runHeadless(ctx context.Context, evs <-chan timer.Event, w io.Writer, cycles int) error {
	seen := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-evs:
			if !ok {
				return nil
			}
			line := fmt.Sprintf("%s %s", ev.Snapshot.PhaseLabel(), ev.Snapshot.Formatted())
			if ev.Kind == timer.EventExhausted {
				line += "  time's up"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("write event: %w", err)
			}
			if ev.Kind != timer.EventExhausted {
				continue
			}
			seen++
			if cycles > 0 && seen >= cycles {
				return nil
			}
		}
	}
}
