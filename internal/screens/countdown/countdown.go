package countdown

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/clock25/internal/logging/events"
	"github.com/abhisek/clock25/internal/router"
	"github.com/abhisek/clock25/internal/screen"
	"github.com/abhisek/clock25/internal/screens/shortcuts"
	"github.com/abhisek/clock25/internal/timer"
	"github.com/abhisek/clock25/internal/ui/layout"
)

// Engine is the part of *timer.Engine the screen drives.
type Engine interface {
	Snapshot() timer.Snapshot
	Events() <-chan timer.Event
	Toggle()
	Reset()
	AdjustBreakLength(delta int)
	AdjustSessionLength(delta int)
}

// EventMsg carries an engine notification into the Bubble Tea loop.
type EventMsg struct {
	Event  timer.Event
	Closed bool
}

// Screen shows the countdown and maps keys to engine commands.
type Screen struct {
	engine Engine
	keys   KeyMap
	snap   timer.Snapshot
	// alarmPhase is set after an exhaustion until the next command.
	alarmPhase string
	stopped    bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates the countdown screen for engine.
func New(engine Engine) *Screen {
	return &Screen{
		engine: engine,
		keys:   DefaultKeyMap(),
		snap:   engine.Snapshot(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.listen()
}

func (s *Screen) Title() string {
	return "25 + 5 Clock"
}

func (s *Screen) Status() string {
	if s.snap.IsRunning() {
		return "● " + s.snap.PhaseLabel()
	}
	return "Ⅱ " + s.snap.PhaseLabel()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	toggle := "Start"
	if s.snap.IsRunning() {
		toggle = "Pause"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: toggle},
		{Key: "R", Description: "Reset"},
		{Key: "?", Description: "Keys"},
		{Key: "Q", Description: "Quit"},
	}
}

// Snapshot returns the state last rendered.
func (s *Screen) Snapshot() timer.Snapshot {
	return s.snap
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return s.handleEvent(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleEvent(msg EventMsg) (screen.Screen, tea.Cmd) {
	if msg.Closed {
		s.stopped = true
		return s, nil
	}
	if msg.Event.Kind == timer.EventExhausted {
		s.alarmPhase = msg.Event.Snapshot.PhaseLabel()
	}
	// Events may have been dropped; the engine is the source of truth.
	s.snap = s.engine.Snapshot()
	return s, s.listen()
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	events.UI.Key(s.Title(), msg.String())

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(msg, s.keys.Help):
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: shortcuts.New(s.keys)}
		}
	case key.Matches(msg, s.keys.Toggle):
		s.engine.Toggle()
	case key.Matches(msg, s.keys.Reset):
		s.engine.Reset()
	case key.Matches(msg, s.keys.BreakDown):
		s.engine.AdjustBreakLength(-1)
	case key.Matches(msg, s.keys.BreakUp):
		s.engine.AdjustBreakLength(1)
	case key.Matches(msg, s.keys.SessionDown):
		s.engine.AdjustSessionLength(-1)
	case key.Matches(msg, s.keys.SessionUp):
		s.engine.AdjustSessionLength(1)
	default:
		return s, nil
	}

	s.alarmPhase = ""
	s.snap = s.engine.Snapshot()
	return s, nil
}

// listen waits for the next engine event.
func (s *Screen) listen() tea.Cmd {
	if s.stopped {
		return nil
	}
	ch := s.engine.Events()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return EventMsg{Closed: true}
		}
		return EventMsg{Event: ev}
	}
}
