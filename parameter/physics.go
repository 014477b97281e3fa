package parameter

// Chain layout
const (
	// PointCount is the number of points in the chain, pin and ball included
	PointCount = 30

	// BallPointCount is the number of tail points that make up the ball
	BallPointCount = 5

	// PointSpacing is the rest distance between adjacent points in pixels
	PointSpacing = 8.0

	// PinX and PinY anchor the first point in canvas pixels
	PinX = 350.0
	PinY = 150.0
)

// Integration
const (
	// GravityDelta is the per-tick vertical acceleration applied to every free point
	GravityDelta = 0.15

	// ExtraBallGravityDelta is added on top of GravityDelta for ball points
	ExtraBallGravityDelta = 0.5

	// RelaxPasses is the number of constraint relaxation passes per tick
	RelaxPasses = 40
)

// Pointer influence
const (
	// PointerInfluencePx is the radius around the pointer within which points receive drag impulses
	PointerInfluencePx = 40.0

	// DragAmplification scales the pointer displacement injected as point velocity
	DragAmplification = 1.1
)
