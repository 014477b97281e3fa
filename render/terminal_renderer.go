package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/parameter"
)

// HUD is the status line content for one frame
type HUD struct {
	Tick         uint64
	Paused       bool
	Muted        bool
	BallSpeed    float64
	SpacingError float64
}

// TerminalRenderer draws frames to a tcell screen: canvas rows on top, one status row at the bottom
type TerminalRenderer struct {
	screen  tcell.Screen
	canvas  *Canvas
	palette Palette
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		canvas:  NewCanvas(0, 0),
		palette: palette,
	}
}

// Canvas exposes the raster of the last frame
func (r *TerminalRenderer) Canvas() *Canvas {
	return r.canvas
}

// RenderFrame renders the rope, the ball and the status bar, then shows the screen
func (r *TerminalRenderer) RenderFrame(f Frame, hud HUD) {
	width, height := r.screen.Size()
	canvasRows := height - 1
	if canvasRows < 0 {
		canvasRows = 0
	}

	r.canvas.Resize(width, canvasRows)

	for _, s := range f.Segments {
		r.canvas.Line(s.X1, s.Y1, s.X2, s.Y2, r.palette.Rope)
	}
	cx, cy := f.Ball.Center()
	r.canvas.FillCircle(cx, cy, f.Ball.Radius(), r.palette.Ball)

	r.canvas.Flush(r.screen, 0, 0, r.palette.Background)

	if height > 0 {
		r.drawStatusBar(width, height-1, hud)
	}

	r.screen.Show()
}

// drawStatusBar renders mode badge, live diagnostics, and right-aligned key help
func (r *TerminalRenderer) drawStatusBar(width, y int, hud HUD) {
	base := tcell.StyleDefault.Background(r.palette.Background)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, base)
	}

	badge, badgeBg := parameter.StatusRunning, r.palette.StatusRunningBg
	if hud.Paused {
		badge, badgeBg = parameter.StatusPaused, r.palette.StatusPausedBg
	}
	x := r.drawText(0, y, width, badge, base.Foreground(r.palette.StatusText).Background(badgeBg))

	info := fmt.Sprintf(" tick %d  speed %.2f  err %.3f", hud.Tick, hud.BallSpeed, hud.SpacingError)
	if hud.Muted {
		info += "  muted"
	}
	x = r.drawText(x, y, width, info, base.Foreground(r.palette.StatusInfo))

	// Help only when it fits after the diagnostics
	help := parameter.HelpText
	if start := width - len(help) - 1; start > x {
		r.drawText(start, y, width, help, base.Foreground(r.palette.StatusHelp))
	}
}

// drawText writes s starting at x, stopping at width; returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
