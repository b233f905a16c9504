// Package alarm provides the sounds played when a countdown phase runs out.
package alarm

import (
	"fmt"
	"io"

	"github.com/abhisek/clock25/internal/logging/events"
)

// Mode selects the alarm implementation.
type Mode string

const (
	ModeSpeaker Mode = "speaker"
	ModeBell    Mode = "bell"
	ModeOff     Mode = "off"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSpeaker, ModeBell, ModeOff:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown alarm mode %q: must be speaker, bell or off", s)
}

// Player is an alarm sound. Play starts from the beginning; failures are
// swallowed.
type Player interface {
	Play()
	Pause()
	SeekToStart()
	Close() error
}

// Options configures Open.
type Options struct {
	Mode Mode
	// File is an optional WAV file for ModeSpeaker.
	File string
	// Bell receives the BEL character for ModeBell and the speaker fallback.
	Bell io.Writer
}

// Open builds the player for opts. A speaker that cannot be initialized
// falls back to the terminal bell.
func Open(opts Options) Player {
	switch opts.Mode {
	case ModeOff:
		return Nop{}
	case ModeBell:
		return NewBell(opts.Bell)
	}

	sp, err := NewSpeaker(opts.File)
	if err != nil {
		events.Alarm.Fallback(string(ModeSpeaker), string(ModeBell), err)
		return NewBell(opts.Bell)
	}
	return sp
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play()        {}
func (Nop) Pause()       {}
func (Nop) SeekToStart() {}
func (Nop) Close() error { return nil }

// Bell rings the terminal bell.
type Bell struct {
	w io.Writer
}

// NewBell returns a Bell writing to w. A nil writer makes it silent.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play() {
	if b.w == nil {
		return
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		events.Alarm.Error("bell", err)
	}
}

func (b *Bell) Pause()       {}
func (b *Bell) SeekToStart() {}
func (b *Bell) Close() error { return nil }
