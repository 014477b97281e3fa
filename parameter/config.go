package parameter

import (
	"math"
	"time"

	"github.com/lixenwraith/pendulum/core"
	"github.com/pkg/errors"
)

// Config collects the fixed simulation constants in one value
// DefaultConfig returns the reference values; tests build variants from it
type Config struct {
	// Chain layout
	PointCount     int
	BallPointCount int
	Spacing        float64
	PinX, PinY     float64

	// Integration
	Gravity     float64
	BallGravity float64 // added to Gravity for ball points
	RelaxPasses int
	TickDelay   time.Duration
	InfluencePx float64
	DragAmplify float64
	DragButton  core.Button

	// Ball drawing
	BallDiameter float64
	BallOffsetX  float64
	BallOffsetY  float64
}

// DefaultConfig returns the reference configuration
func DefaultConfig() Config {
	return Config{
		PointCount:     PointCount,
		BallPointCount: BallPointCount,
		Spacing:        PointSpacing,
		PinX:           PinX,
		PinY:           PinY,
		Gravity:        GravityDelta,
		BallGravity:    ExtraBallGravityDelta,
		RelaxPasses:    RelaxPasses,
		TickDelay:      TickDelay,
		InfluencePx:    PointerInfluencePx,
		DragAmplify:    DragAmplification,
		DragButton:     core.ButtonPrimary,
		BallDiameter:   BallDiameterPx,
		BallOffsetX:    BallOffsetX,
		BallOffsetY:    BallOffsetY,
	}
}

// Validate checks the chain layout invariant (pin + at least one point before the ball)
// and rejects values that would make the integration non-finite
func (c Config) Validate() error {
	if c.BallPointCount < 1 {
		return errors.Errorf("ball point count must be positive, got %d", c.BallPointCount)
	}
	if c.PointCount < c.BallPointCount+1 {
		return errors.Errorf("point count %d must exceed ball point count %d", c.PointCount, c.BallPointCount)
	}
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		return errors.Errorf("spacing must be positive and finite, got %v", c.Spacing)
	}
	if c.RelaxPasses < 0 {
		return errors.Errorf("relax passes must not be negative, got %d", c.RelaxPasses)
	}
	for _, v := range []float64{c.PinX, c.PinY, c.Gravity, c.BallGravity, c.InfluencePx, c.DragAmplify} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("configuration contains a non-finite value")
		}
	}
	return nil
}

// BallStart returns the index of the first ball point
func (c Config) BallStart() int {
	return c.PointCount - c.BallPointCount
}

// NewChain builds the chain described by the configuration
func (c Config) NewChain() (*core.Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid chain configuration")
	}
	return core.NewChain(c.PointCount, c.BallPointCount, c.Spacing, c.PinX, c.PinY)
}
