package events

import "github.com/abhisek/clock25/internal/logging"

// TimerTracer records engine activity.
type TimerTracer struct{}

// AlarmTracer records alarm failures.
type AlarmTracer struct{}

// UITracer records key presses.
type UITracer struct{}

var (
	Timer = TimerTracer{}
	Alarm = AlarmTracer{}
	UI    = UITracer{}
)

// Command records a completed engine command and the state it left behind.
func (TimerTracer) Command(engineID, name string, state map[string]any) {
	logging.Trace("timer.command", map[string]any{
		"engine":  engineID,
		"command": name,
		"state":   state,
	})
}

// Exhausted records a phase change and the seconds reloaded for it.
func (TimerTracer) Exhausted(engineID, nextPhase string, reload int) {
	logging.Trace("timer.exhausted", map[string]any{
		"engine": engineID,
		"phase":  nextPhase,
		"reload": reload,
	})
}

// Closed records engine teardown.
func (TimerTracer) Closed(engineID string) {
	logging.Trace("timer.closed", map[string]any{"engine": engineID})
}

// Error records an alarm failure. Alarm failures are never surfaced to the user.
func (AlarmTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("alarm.error", map[string]any{"op": op, "error": err.Error()})
}

// Fallback records a switch to a simpler alarm after err.
func (AlarmTracer) Fallback(from, to string, err error) {
	payload := map[string]any{"from": from, "to": to}
	if err != nil {
		payload["error"] = err.Error()
		logging.Error(err)
	}
	logging.Trace("alarm.fallback", payload)
}

// Key records a key press on screen.
func (UITracer) Key(screen, key string) {
	logging.Trace("ui.key", map[string]any{"screen": screen, "key": key})
}
