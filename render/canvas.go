package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/lixenwraith/pendulum/vmath"
)

// Sub-cell size in canvas pixels; each terminal cell holds a 2x2 quadrant bitmap
const (
	subCellW = float64(parameter.CellWidthPx) / 2
	subCellH = float64(parameter.CellHeightPx) / 2
)

// Canvas rasterizes canvas-pixel geometry into terminal cells at quadrant resolution
// Each cell keeps a 4-bit coverage mask and the color of the last layer drawn into it
type Canvas struct {
	width, height int
	mask          []uint8
	fg            []tcell.Color
}

// NewCanvas creates a canvas of width x height terminal cells
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the cell dimensions, reallocating only when capacity is short, and clears
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height
	if cap(c.mask) < n {
		c.mask = make([]uint8, n)
		c.fg = make([]tcell.Color, n)
	}
	c.mask = c.mask[:n]
	c.fg = c.fg[:n]
	c.width, c.height = width, height
	c.Clear()
}

// Size returns the dimensions in terminal cells
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear empties every cell
func (c *Canvas) Clear() {
	for i := range c.mask {
		c.mask[i] = 0
		c.fg[i] = tcell.ColorDefault
	}
}

// Plot sets one sub-cell; out-of-bounds coordinates are ignored and return false
func (c *Canvas) Plot(sx, sy int, fg tcell.Color) bool {
	if sx < 0 || sy < 0 || sx >= c.width*2 || sy >= c.height*2 {
		return false
	}
	idx := (sy>>1)*c.width + sx>>1
	c.mask[idx] |= subCellBit(sx, sy)
	c.fg[idx] = fg
	return true
}

// Cell returns the glyph and color of a terminal cell
func (c *Canvas) Cell(x, y int) (rune, tcell.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' ', tcell.ColorDefault
	}
	idx := y*c.width + x
	return quadrantChars[c.mask[idx]], c.fg[idx]
}

// Line draws a canvas-pixel segment, clipped to the canvas
func (c *Canvas) Line(x1, y1, x2, y2 float64, fg tcell.Color) {
	if !vmath.IsFinite(x1) || !vmath.IsFinite(y1) || !vmath.IsFinite(x2) || !vmath.IsFinite(y2) {
		return
	}

	// Sub-cell units
	x1, y1 = x1/subCellW, y1/subCellH
	x2, y2 = x2/subCellW, y2/subCellH

	x1, y1, x2, y2, ok := clipSegment(x1, y1, x2, y2, float64(c.width*2), float64(c.height*2))
	if !ok {
		return
	}

	vmath.Traverse(x1, y1, x2, y2, func(sx, sy int) bool {
		c.Plot(sx, sy, fg)
		return true
	})
}

// FillCircle fills every sub-cell whose center lies inside the circle, all in canvas pixels
func (c *Canvas) FillCircle(cx, cy, radius float64, fg tcell.Color) {
	if !vmath.IsFinite(cx) || !vmath.IsFinite(cy) || !(radius > 0) || !vmath.IsFinite(radius) {
		return
	}

	minX, minY, maxX, maxY := vmath.CircleCells(cx, cy, radius, 1/subCellW, 1/subCellH)
	if maxX < 0 || maxY < 0 || minX >= c.width*2 || minY >= c.height*2 {
		return
	}
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, c.width*2-1), min(maxY, c.height*2-1)

	for sy := minY; sy <= maxY; sy++ {
		py := (float64(sy) + 0.5) * subCellH
		for sx := minX; sx <= maxX; sx++ {
			px := (float64(sx) + 0.5) * subCellW
			if vmath.CircleContains(px, py, cx, cy, radius) {
				c.Plot(sx, sy, fg)
			}
		}
	}
}

// Flush writes every cell to the screen at the given origin
func (c *Canvas) Flush(screen tcell.Screen, originX, originY int, bg tcell.Color) {
	base := tcell.StyleDefault.Background(bg)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			idx := y*c.width + x
			style := base
			if c.mask[idx] != 0 {
				style = style.Foreground(c.fg[idx])
			}
			screen.SetContent(originX+x, originY+y, quadrantChars[c.mask[idx]], nil, style)
		}
	}
}

// clipSegment clips to [0, maxX] x [0, maxY] (Liang-Barsky), keeping traversal bounded for far-off points
func clipSegment(x1, y1, x2, y2, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x1},
		{dx, maxX - x1},
		{-dy, y1},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
