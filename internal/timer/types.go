package timer

import "time"

// Length bounds and defaults, in minutes.
const (
	MinLength = 1
	MaxLength = 60

	DefaultBreakLength   = 5
	DefaultSessionLength = 25
)

// TickInterval is the period of the countdown.
const TickInterval = time.Second

// Phase selects which configured length governs the next reload.
type Phase int

const (
	PhaseSession Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Session"
}

// Next returns the phase that follows p on exhaustion.
func (p Phase) Next() Phase {
	if p == PhaseSession {
		return PhaseBreak
	}
	return PhaseSession
}

// RunState reports whether the tick source is installed.
type RunState int

const (
	Idle RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Alarm is the audio collaborator sounded on exhaustion. Implementations
// must not block and must swallow their own failures.
type Alarm interface {
	Play()
	Pause()
	SeekToStart()
}

type nopAlarm struct{}

func (nopAlarm) Play()        {}
func (nopAlarm) Pause()       {}
func (nopAlarm) SeekToStart() {}

// Snapshot is a consistent view of engine state.
type Snapshot struct {
	BreakLength   int
	SessionLength int
	Remaining     int
	Phase         Phase
	State         RunState
}

// Formatted returns Remaining as MM:SS.
func (s Snapshot) Formatted() string {
	return FormatRemaining(s.Remaining)
}

// PhaseLabel returns "Session" or "Break".
func (s Snapshot) PhaseLabel() string {
	return s.Phase.String()
}

// IsRunning reports whether the countdown is active.
func (s Snapshot) IsRunning() bool {
	return s.State == Running
}

// PhaseSeconds returns the full length of the current phase in seconds.
func (s Snapshot) PhaseSeconds() int {
	if s.Phase == PhaseBreak {
		return s.BreakLength * 60
	}
	return s.SessionLength * 60
}

func (s Snapshot) traceState() map[string]any {
	return map[string]any{
		"break":     s.BreakLength,
		"session":   s.SessionLength,
		"remaining": s.Remaining,
		"phase":     s.Phase.String(),
		"state":     s.State.String(),
	}
}

// EventKind classifies engine notifications.
type EventKind int

const (
	// EventCommand follows a command that changed state.
	EventCommand EventKind = iota
	// EventTick follows a decrement.
	EventTick
	// EventExhausted follows a phase flip and alarm.
	EventExhausted
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventExhausted:
		return "exhausted"
	default:
		return "command"
	}
}

// Event notifies listeners that engine state changed.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}
