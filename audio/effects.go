package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"
)

// fadeOut scales a finite streamer linearly from full to silent over total samples
type fadeOut struct {
	streamer beep.Streamer
	total    int
	position int
}

func (e *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0 - float64(e.position)/float64(e.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *fadeOut) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newReleaseClick builds the short fading tone played when a drag ends
func newReleaseClick(sr beep.SampleRate, freq float64, samples int, vol float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "release click at %vHz", freq)
	}
	faded := &fadeOut{streamer: beep.Take(samples, tone), total: samples}
	return newVolume(faded, vol), nil
}
