package parameter

// Canvas geometry in pixels
const (
	CanvasWidth  = 700
	CanvasHeight = 500

	// CellWidthPx and CellHeightPx are the canvas pixels covered by one terminal cell
	// Each cell renders as a 2x2 quadrant bitmap, so a sub-cell is 4x8 pixels
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Ball drawing
const (
	// BallDiameterPx is the drawn ball diameter
	BallDiameterPx = 50.0

	// BallOffsetX and BallOffsetY shift the ball's bounding box from the first ball point
	// so the circle sits over the anchor instead of hanging off its corner
	BallOffsetX = 25.0
	BallOffsetY = 35.0
)

// Draw colors as straight-alpha RGBA
var (
	RopeColor       = [4]uint8{222, 222, 222, 153}
	BallColor       = [4]uint8{255, 0, 0, 255}
	BackgroundColor = [4]uint8{0, 0, 0, 255}

	// RopeStrokeWidth is the pen width used by pixel drivers
	RopeStrokeWidth = float32(2)
)

// Status line
const (
	StatusPaused  = " PAUSED "
	StatusRunning = " RUNNING "
	HelpText      = "drag: left button  space: pause  r: reset  q: quit"
)
