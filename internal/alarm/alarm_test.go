package alarm

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/clock25/internal/logging"
)

// fakeOutput mixes attached streamers on demand instead of a device.
type fakeOutput struct {
	mu      sync.Mutex
	mixer   beep.Mixer
	plays   int
	initErr error
}

func (o *fakeOutput) Init(beep.SampleRate, int) error { return o.initErr }
func (o *fakeOutput) Lock()                           { o.mu.Lock() }
func (o *fakeOutput) Unlock()                         { o.mu.Unlock() }

func (o *fakeOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.plays++
	o.mixer.Add(s)
}

func (o *fakeOutput) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mixer.Clear()
}

// pull renders n samples and reports whether any were audible.
func (o *fakeOutput) pull(n int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	samples := make([][2]float64, n)
	o.mixer.Stream(samples)
	for _, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			return true
		}
	}
	return false
}

func (o *fakeOutput) attached() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mixer.Len()
}

func newTestSpeaker(t *testing.T) (*Speaker, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	sp, err := newSpeaker(out, "")
	require.NoError(t, err)
	return sp, out
}

func TestBuiltInSoundLength(t *testing.T) {
	buf, err := loadSound("")
	require.NoError(t, err)

	want := 2*sampleRate.N(toneDuration) + sampleRate.N(toneGap)
	assert.Equal(t, want, buf.Len())
}

func TestSpeakerSilentUntilPlayed(t *testing.T) {
	_, out := newTestSpeaker(t)
	assert.False(t, out.pull(512))
	assert.Equal(t, 0, out.plays)
}

func TestSpeakerPlayProducesSound(t *testing.T) {
	sp, out := newTestSpeaker(t)

	sp.Play()

	assert.True(t, out.pull(512))
	assert.Equal(t, 1, out.plays)
}

func TestSpeakerPauseSilences(t *testing.T) {
	sp, out := newTestSpeaker(t)
	sp.Play()
	out.pull(256)

	sp.Pause()

	assert.False(t, out.pull(512))
}

func TestSpeakerPlayWhileQueuedRewinds(t *testing.T) {
	sp, out := newTestSpeaker(t)
	sp.Play()
	out.pull(2000)

	sp.Play()

	assert.Equal(t, 1, out.plays)
	assert.Equal(t, 0, sp.seeker.Position())
}

func TestSpeakerReattachesAfterFinishing(t *testing.T) {
	sp, out := newTestSpeaker(t)
	sp.Play()
	for i := 0; i < 40 && out.attached() > 0; i++ {
		out.pull(1024)
	}
	require.Equal(t, 0, out.attached())

	sp.Play()

	assert.Equal(t, 2, out.plays)
	assert.True(t, out.pull(512))
}

func TestSpeakerSeekToStart(t *testing.T) {
	sp, out := newTestSpeaker(t)
	sp.Play()
	out.pull(3000)
	sp.Pause()

	sp.SeekToStart()

	assert.Equal(t, 0, sp.seeker.Position())
	assert.False(t, out.pull(256))
}

func TestSpeakerClose(t *testing.T) {
	sp, out := newTestSpeaker(t)
	sp.Play()

	require.NoError(t, sp.Close())
	require.NoError(t, sp.Close())
	sp.Play()
	sp.Pause()
	sp.SeekToStart()

	assert.Equal(t, 0, out.attached())
	assert.Equal(t, 1, out.plays)
}

func TestSpeakerInitError(t *testing.T) {
	_, err := newSpeaker(&fakeOutput{initErr: errors.New("no device")}, "")
	assert.EqualError(t, err, "no device")
}

func TestLoadSoundFromWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, newTone(440, 100*time.Millisecond, format.SampleRate), format))
	require.NoError(t, f.Close())

	buf, err := loadSound(path)
	require.NoError(t, err)

	// Resampled to the output rate.
	assert.InDelta(t, sampleRate.N(100*time.Millisecond), buf.Len(), 64)
}

func TestLoadSoundErrors(t *testing.T) {
	_, err := loadSound(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorContains(t, err, "open alarm file")

	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav"), 0o644))
	_, err = loadSound(bad)
	assert.ErrorContains(t, err, "decode")
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	b.Play()
	b.Pause()
	b.SeekToStart()
	b.Play()

	assert.Equal(t, "\a\a", buf.String())
	assert.NotPanics(t, func() { NewBell(nil).Play() })
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"speaker", "bell", "off"} {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, Mode(name), m)
	}
	_, err := ParseMode("siren")
	assert.Error(t, err)
}

func TestOpenSelectsMode(t *testing.T) {
	assert.IsType(t, Nop{}, Open(Options{Mode: ModeOff}))
	assert.IsType(t, &Bell{}, Open(Options{Mode: ModeBell}))
}

func TestOpenFallsBackToBell(t *testing.T) {
	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(nil) })

	p := Open(Options{Mode: ModeSpeaker, File: filepath.Join(t.TempDir(), "missing.wav")})
	assert.IsType(t, &Bell{}, p)
}
