package core

import "github.com/pkg/errors"

// Chain is a fixed-length sequence of points: index 0 is the pin, the last ballCount points are the ball
// Points are stored by value and addressed by index; the slice is never resized
type Chain struct {
	Points []Point

	PinX, PinY float64
	Spacing    float64

	ballStart int
}

// NewChain lays out count points on the pin column, descending by spacing, all at rest
func NewChain(count, ballCount int, spacing, pinX, pinY float64) (*Chain, error) {
	if ballCount < 1 {
		return nil, errors.Errorf("chain needs at least one ball point, got %d", ballCount)
	}
	if count < ballCount+1 {
		return nil, errors.Errorf("chain of %d points cannot hold a pin and %d ball points", count, ballCount)
	}
	if !(spacing > 0) {
		return nil, errors.Errorf("chain spacing must be positive, got %v", spacing)
	}

	c := &Chain{
		Points:    make([]Point, count),
		PinX:      pinX,
		PinY:      pinY,
		Spacing:   spacing,
		ballStart: count - ballCount,
	}
	c.Reset()
	return c, nil
}

// Reset restores the constructed layout and role flags
func (c *Chain) Reset() {
	for i := range c.Points {
		p := &c.Points[i]
		p.Place(c.PinX, c.PinY+float64(i)*c.Spacing)
		p.IsPin = i == 0
		p.IsWithinBall = i >= c.ballStart
	}
}

// Len returns the number of points
func (c *Chain) Len() int {
	return len(c.Points)
}

// BallStart returns the index of the first ball point
func (c *Chain) BallStart() int {
	return c.ballStart
}

// Pin returns the anchored point
func (c *Chain) Pin() *Point {
	return &c.Points[0]
}

// BallAnchor returns the first ball point, which positions the drawn ball
func (c *Chain) BallAnchor() *Point {
	return &c.Points[c.ballStart]
}

// Tail returns the last point of the chain
func (c *Chain) Tail() *Point {
	return &c.Points[len(c.Points)-1]
}

// Clone returns an independent copy of the chain
func (c *Chain) Clone() *Chain {
	cp := *c
	cp.Points = make([]Point, len(c.Points))
	copy(cp.Points, c.Points)
	return &cp
}
