package core

// Point is a chain particle; velocity is implied by the change from Prev to current position
type Point struct {
	X, Y         float64
	PrevX, PrevY float64

	// IsPin marks the anchored first point
	IsPin bool
	// IsWithinBall marks tail points drawn as the ball and pulled by extra gravity
	IsWithinBall bool
}

// Velocity returns the displacement since the previous integration step
func (p *Point) Velocity() (vx, vy float64) {
	return p.X - p.PrevX, p.Y - p.PrevY
}

// Place sets position and previous position, leaving the point at rest
func (p *Point) Place(x, y float64) {
	p.X, p.Y = x, y
	p.PrevX, p.PrevY = x, y
}
