package parameter

import (
	"math"
	"testing"

	"github.com/lixenwraith/pendulum/core"
)

func TestDefaultConfigMatchesReference(t *testing.T) {
	c := DefaultConfig()

	if c.PointCount != 30 || c.BallPointCount != 5 {
		t.Fatalf("layout = %d/%d, want 30/5", c.PointCount, c.BallPointCount)
	}
	if c.Spacing != 8 || c.PinX != 350 || c.PinY != 150 {
		t.Fatalf("geometry = spacing %v pin (%v,%v), want 8 (350,150)", c.Spacing, c.PinX, c.PinY)
	}
	if c.Gravity != 0.15 || c.BallGravity != 0.5 || c.RelaxPasses != 40 {
		t.Fatalf("integration = %v/%v/%d, want 0.15/0.5/40", c.Gravity, c.BallGravity, c.RelaxPasses)
	}
	if c.InfluencePx != 40 || c.DragAmplify != 1.1 || c.DragButton != core.ButtonPrimary {
		t.Fatalf("pointer = %v/%v/%v, want 40/1.1/primary", c.InfluencePx, c.DragAmplify, c.DragButton)
	}
	if c.BallDiameter != 50 || c.BallOffsetX != 25 || c.BallOffsetY != 35 {
		t.Fatalf("ball = %v (%v,%v), want 50 (25,35)", c.BallDiameter, c.BallOffsetX, c.BallOffsetY)
	}
	if c.BallStart() != 25 {
		t.Fatalf("BallStart() = %d, want 25", c.BallStart())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"minimum layout", func(c *Config) { c.PointCount, c.BallPointCount = 2, 1 }, false},
		{"no room before ball", func(c *Config) { c.PointCount, c.BallPointCount = 5, 5 }, true},
		{"zero ball", func(c *Config) { c.BallPointCount = 0 }, true},
		{"zero spacing", func(c *Config) { c.Spacing = 0 }, true},
		{"NaN spacing", func(c *Config) { c.Spacing = math.NaN() }, true},
		{"negative passes", func(c *Config) { c.RelaxPasses = -1 }, true},
		{"zero passes", func(c *Config) { c.RelaxPasses = 0 }, false},
		{"infinite gravity", func(c *Config) { c.Gravity = math.Inf(1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigNewChain(t *testing.T) {
	c := DefaultConfig()
	chain, err := c.NewChain()
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	if chain.Len() != c.PointCount {
		t.Fatalf("chain length = %d, want %d", chain.Len(), c.PointCount)
	}

	c.PointCount = 3
	if _, err := c.NewChain(); err == nil {
		t.Fatal("expected error for chain shorter than ball")
	}
}
