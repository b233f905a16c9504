package alarm

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/abhisek/clock25/internal/logging/events"
)

// output is the audio device. The speaker package is process-global, so
// it sits behind this seam.
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

type deviceOutput struct{}

func (deviceOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}
func (deviceOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (deviceOutput) Lock()                { speaker.Lock() }
func (deviceOutput) Unlock()              { speaker.Unlock() }
func (deviceOutput) Clear()               { speaker.Clear() }

var errClosed = errors.New("alarm: speaker closed")

// Speaker plays a buffered sound through the audio device.
type Speaker struct {
	mu     sync.Mutex
	out    output
	seeker beep.StreamSeeker
	ctrl   *beep.Ctrl
	// queued is true while ctrl is attached to the device. It is cleared
	// from the device goroutine when the sound finishes.
	queued atomic.Bool
	closed bool
}

// NewSpeaker initializes the audio device and loads the alarm sound from
// a WAV file, or the built-in beep when file is empty.
func NewSpeaker(file string) (*Speaker, error) {
	return newSpeaker(deviceOutput{}, file)
}

func newSpeaker(out output, file string) (*Speaker, error) {
	buf, err := loadSound(file)
	if err != nil {
		return nil, err
	}
	if err := out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	seeker := buf.Streamer(0, buf.Len())
	return &Speaker{
		out:    out,
		seeker: seeker,
		ctrl:   &beep.Ctrl{Streamer: seeker, Paused: true},
	}, nil
}

// Play rewinds and starts the sound.
func (s *Speaker) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		events.Alarm.Error("play", errClosed)
		return
	}

	s.out.Lock()
	err := s.seeker.Seek(0)
	s.ctrl.Paused = false
	s.out.Unlock()
	if err != nil {
		events.Alarm.Error("seek", err)
	}

	if !s.queued.Swap(true) {
		s.out.Play(beep.Seq(s.ctrl, beep.Callback(func() { s.queued.Store(false) })))
	}
}

// Pause silences the sound, keeping its position.
func (s *Speaker) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.out.Lock()
	s.ctrl.Paused = true
	s.out.Unlock()
}

// SeekToStart rewinds the sound without changing whether it plays.
func (s *Speaker) SeekToStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.out.Lock()
	err := s.seeker.Seek(0)
	s.out.Unlock()
	if err != nil {
		events.Alarm.Error("seek", err)
	}
}

// Close detaches the sound from the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.out.Clear()
	s.queued.Store(false)
	return nil
}
