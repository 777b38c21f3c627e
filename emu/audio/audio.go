// Package audio emits the single tone a CHIP-8 can make. A sine-wave
// streamer plays on the beep speaker for the life of the process; the
// driver gates it on and off from the sound timer.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a beep.Streamer producing a fixed-frequency sine wave while the
// gate is open and silence while it is closed.
type Tone struct {
	freq  float64
	phase float64
	gate  bool
}

// New initializes the speaker and starts a silent tone at the given
// frequency in Hz.
func New(freq float64) (*Tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	t := &Tone{freq: freq}
	speaker.Play(t)
	return t, nil
}

// SetActive opens or closes the gate. Safe to call from the driver loop
// while the speaker goroutine streams.
func (t *Tone) SetActive(on bool) {
	speaker.Lock()
	t.gate = on
	speaker.Unlock()
}

// Stream fills samples with the sine wave or silence. Implements
// beep.Streamer; called by the speaker with its lock held.
func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	step := t.freq / float64(sampleRate)
	for i := range samples {
		v := 0.0
		if t.gate {
			v = 0.25 * math.Sin(2*math.Pi*t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	return len(samples), true
}

// Err implements beep.Streamer. The tone never fails.
func (t *Tone) Err() error {
	return nil
}
