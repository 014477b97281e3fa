package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/pendulum/vmath"
)

const (
	swingBaseFreq  = 90.0
	swingFreqRange = 140.0
	swingPeak      = 0.2
	swingGlide     = 0.002 // per-sample approach toward the target level
)

// SwingGenerator is an endless whoosh whose loudness and pitch follow a level in [0, 1]
// The level is set from the simulation goroutine and read by the speaker goroutine
type SwingGenerator struct {
	sr    beep.SampleRate
	level atomic.Uint64 // float64 bits

	current float64
	phase   float64
}

// NewSwingGenerator creates a silent swing generator
func NewSwingGenerator(sr beep.SampleRate) *SwingGenerator {
	return &SwingGenerator{sr: sr}
}

// SetLevel sets the target level, clamped to [0, 1]
func (g *SwingGenerator) SetLevel(v float64) {
	if !vmath.IsFinite(v) {
		v = 0
	}
	g.level.Store(math.Float64bits(vmath.Clamp(v, 0, 1)))
}

// Level returns the target level
func (g *SwingGenerator) Level() float64 {
	return math.Float64frombits(g.level.Load())
}

func (g *SwingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := g.Level()
	step := 2 * math.Pi / float64(g.sr)

	for i := range samples {
		// Glide toward the target so level jumps never click
		g.current += (target - g.current) * swingGlide

		freq := swingBaseFreq + swingFreqRange*g.current
		g.phase += step * freq
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		sample := swingPeak * g.current * (0.75*math.Sin(g.phase) + 0.25*math.Sin(2*g.phase))
		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *SwingGenerator) Err() error {
	return nil
}
