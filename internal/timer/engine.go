// Package timer implements the session/break countdown engine.
//
// An Engine owns all timer state. Commands (AdjustBreakLength,
// AdjustSessionLength, Toggle, Reset) and ticks are serialized by a single
// mutex, so each one is applied atomically. While running, the engine holds
// exactly one clock.Handle; every change to state the tick depends on
// releases that handle and installs a new one.
package timer

import (
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/clock25/internal/clock"
	"github.com/abhisek/clock25/internal/logging/events"
)

const defaultEventBuffer = 16

// Engine is a single countdown clock.
type Engine struct {
	mu sync.Mutex

	id    string
	clock clock.Clock
	alarm Alarm

	initialBreak   int
	initialSession int

	breakLen   int
	sessionLen int
	phase      Phase
	remaining  int
	state      RunState

	handle clock.Handle
	// gen identifies the installed handle. Ticks from older handles are dropped.
	gen uint64

	events chan Event
	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the tick source. Defaults to clock.System().
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithAlarm sets the audio collaborator. Nil keeps the silent default.
func WithAlarm(a Alarm) Option {
	return func(e *Engine) {
		if a != nil {
			e.alarm = a
		}
	}
}

// WithDefaults sets the lengths the engine starts with. Values are clamped
// to [MinLength, MaxLength]. Reset always restores the factory lengths.
func WithDefaults(breakLen, sessionLen int) Option {
	return func(e *Engine) {
		e.initialBreak = clamp(breakLen)
		e.initialSession = clamp(sessionLen)
	}
}

// WithEventBuffer sets the capacity of the Events channel.
func WithEventBuffer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.events = make(chan Event, n)
		}
	}
}

// New creates an idle engine in the Session phase.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:             uuid.New().String(),
		clock:          clock.System(),
		alarm:          nopAlarm{},
		initialBreak:   DefaultBreakLength,
		initialSession: DefaultSessionLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.events == nil {
		e.events = make(chan Event, defaultEventBuffer)
	}
	e.load(e.initialBreak, e.initialSession)
	return e
}

// ID identifies the engine in trace logs.
func (e *Engine) ID() string {
	return e.id
}

// Events delivers a notification after every state change. Delivery never
// blocks the engine: when the buffer is full the event is dropped, and the
// receiver should read Snapshot for the current state. The channel is
// closed by Close.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// AdjustBreakLength adds delta to the break length, clamped to [1, 60].
// Remaining time is never reloaded here, even in the Break phase.
func (e *Engine) AdjustBreakLength(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	next := clamp(e.breakLen + delta)
	if next == e.breakLen {
		return
	}
	e.breakLen = next
	if e.state == Running {
		e.rearm()
	}
	e.commandDone("adjust-break")
}

// AdjustSessionLength adds delta to the session length, clamped to [1, 60].
// While idle, remaining time is reloaded from the new length whatever the
// phase. While running, the new length applies at the next reload.
func (e *Engine) AdjustSessionLength(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	next := clamp(e.sessionLen + delta)
	if next == e.sessionLen {
		return
	}
	e.sessionLen = next
	if e.state == Running {
		e.rearm()
	} else {
		e.remaining = e.sessionLen * 60
	}
	e.commandDone("adjust-session")
}

// Toggle starts an idle countdown or pauses a running one.
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	if e.state == Running {
		e.state = Idle
	} else {
		e.state = Running
	}
	e.rearm()
	e.commandDone("toggle")
}

// Reset stops the countdown, restores the factory lengths (5 and 25) and the
// Session phase, and stops and rewinds the alarm.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.release()
	e.load(DefaultBreakLength, DefaultSessionLength)
	e.alarm.Pause()
	e.alarm.SeekToStart()
	e.commandDone("reset")
}

// Close releases the tick source and closes the Events channel. Commands
// after Close are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.release()
	e.state = Idle
	e.closed = true
	close(e.events)
	events.Timer.Closed(e.id)
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// BreakLength returns the configured break length in minutes.
func (e *Engine) BreakLength() int { return e.Snapshot().BreakLength }

// SessionLength returns the configured session length in minutes.
func (e *Engine) SessionLength() int { return e.Snapshot().SessionLength }

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int { return e.Snapshot().Remaining }

// Formatted returns the remaining time as MM:SS.
func (e *Engine) Formatted() string { return e.Snapshot().Formatted() }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.Snapshot().Phase }

// PhaseLabel returns "Session" or "Break".
func (e *Engine) PhaseLabel() string { return e.Snapshot().PhaseLabel() }

// IsRunning reports whether the countdown is active.
func (e *Engine) IsRunning() bool { return e.Snapshot().IsRunning() }

// tick advances the countdown by one second. gen is the generation of the
// handle that fired; a mismatch means the handle was released meanwhile.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state != Running || gen != e.gen {
		return
	}

	if e.remaining > 0 {
		e.remaining--
		e.emit(EventTick)
		return
	}

	e.alarm.Play()
	e.phase = e.phase.Next()
	if e.phase == PhaseBreak {
		e.remaining = e.breakLen * 60
	} else {
		e.remaining = e.sessionLen * 60
	}
	// The phase is part of what the tick depends on.
	e.rearm()
	events.Timer.Exhausted(e.id, e.phase.String(), e.remaining)
	e.emit(EventExhausted)
}

// rearm releases the current handle and, when running, installs a new one.
func (e *Engine) rearm() {
	e.release()
	if e.state != Running {
		return
	}
	gen := e.gen
	e.handle = e.clock.Every(TickInterval, func() { e.tick(gen) })
}

// release stops the current handle and invalidates ticks already in flight.
func (e *Engine) release() {
	if e.handle != nil {
		e.handle.Stop()
		e.handle = nil
	}
	e.gen++
}

func (e *Engine) load(breakLen, sessionLen int) {
	e.state = Idle
	e.phase = PhaseSession
	e.breakLen = breakLen
	e.sessionLen = sessionLen
	e.remaining = e.sessionLen * 60
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		BreakLength:   e.breakLen,
		SessionLength: e.sessionLen,
		Remaining:     e.remaining,
		Phase:         e.phase,
		State:         e.state,
	}
}

func (e *Engine) commandDone(name string) {
	events.Timer.Command(e.id, name, e.snapshot().traceState())
	e.emit(EventCommand)
}

func (e *Engine) emit(kind EventKind) {
	select {
	case e.events <- Event{Kind: kind, Snapshot: e.snapshot()}:
	default:
	}
}
