package render

import (
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
)

// Segment is one rope line in canvas pixels
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Circle is the ball's bounding box: top-left corner and diameter
type Circle struct {
	X, Y     float64
	Diameter float64
}

// Center returns the circle center
func (c Circle) Center() (x, y float64) {
	r := c.Diameter / 2
	return c.X + r, c.Y + r
}

// Radius returns half the diameter
func (c Circle) Radius() float64 {
	return c.Diameter / 2
}

// Frame is the draw list for one tick
type Frame struct {
	Segments []Segment
	Ball     Circle
}

// BuildFrame captures the chain as draw commands
func BuildFrame(c *core.Chain, cfg parameter.Config) Frame {
	var f Frame
	f.Fill(c, cfg)
	return f
}

// Fill rebuilds the frame in place, reusing the segment slice
// Rope segments join each adjacent pair up to the first ball point; the ball is offset from that point
func (f *Frame) Fill(c *core.Chain, cfg parameter.Config) {
	ballStart := c.BallStart()
	f.Segments = f.Segments[:0]
	for i := 0; i < ballStart; i++ {
		a, b := &c.Points[i], &c.Points[i+1]
		f.Segments = append(f.Segments, Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y})
	}

	anchor := c.BallAnchor()
	f.Ball = Circle{
		X:        anchor.X - cfg.BallOffsetX,
		Y:        anchor.Y - cfg.BallOffsetY,
		Diameter: cfg.BallDiameter,
	}
}
