// Package audio implements the beeper of the machine.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
	"time"
)

// Beeper output defaults.
const (
	SampleRate    = 44100
	ToneFrequency = 440
	BeepDuration  = 100 * time.Millisecond

	amplitude      = 0.25
	bytesPerSample = 4 // mono float32
)

// Tone is a square wave generator that produces mono little-endian float32
// samples. Trigger arms the tone for a duration, silence is produced
// otherwise. Trigger and Read may be called from different goroutines.
type Tone struct {
	sampleRate int
	halfPeriod int // samples per half wave

	remaining atomic.Int64 // samples left to play
	position  int          // position within the current period
}

// NewTone returns a silent tone generator.
func NewTone(sampleRate, frequency int) *Tone {
	halfPeriod := max(sampleRate/(2*frequency), 1)
	return &Tone{
		sampleRate: sampleRate,
		halfPeriod: halfPeriod,
	}
}

// Trigger plays the tone for the given duration, restarting a tone that is
// still playing.
func (t *Tone) Trigger(duration time.Duration) {
	samples := int64(duration) * int64(t.sampleRate) / int64(time.Second)
	t.remaining.Store(samples)
}

// Playing returns whether samples of the tone are pending.
func (t *Tone) Playing() bool {
	return t.remaining.Load() > 0
}

// Read fills p with whole samples. It never returns an error so that the
// output stream stays open.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample * bytesPerSample
	for i := 0; i < n; i += bytesPerSample {
		var sample float32
		if t.remaining.Load() > 0 {
			t.remaining.Add(-1)
			sample = amplitude
			if t.position >= t.halfPeriod {
				sample = -amplitude
			}
			t.position = (t.position + 1) % (2 * t.halfPeriod)
		}
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(sample))
	}
	return n, nil
}
