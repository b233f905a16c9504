package alarm

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)

	toneFreq     = 880.0
	toneDuration = 150 * time.Millisecond
	toneGap      = 80 * time.Millisecond
	toneVolume   = 0.3
)

var soundFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// loadSound buffers the alarm sound: the WAV at path, or the built-in
// double beep when path is empty.
func loadSound(path string) (*beep.Buffer, error) {
	buf := beep.NewBuffer(soundFormat)
	if path == "" {
		buf.Append(beep.Seq(
			newTone(toneFreq, toneDuration, sampleRate),
			beep.Silence(sampleRate.N(toneGap)),
			newTone(toneFreq, toneDuration, sampleRate),
		))
		return buf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alarm file: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("alarm file %s is empty", path)
	}
	return buf, nil
}

// tone is a sine oscillator with a short linear fade at both ends.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	fade     int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(d),
		fade:     rate.N(5 * time.Millisecond),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		env := 1.0
		if t.position < t.fade {
			env = float64(t.position) / float64(t.fade)
		} else if left := t.duration - t.position; left < t.fade {
			env = float64(left) / float64(t.fade)
		}
		val := toneVolume * env * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
