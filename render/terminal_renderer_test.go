package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/parameter"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestRenderFrameDrawsRopeAndBall(t *testing.T) {
	screen := newSimScreen(t, 100, 34)
	palette := NewPalette(true)
	renderer := NewTerminalRenderer(screen, palette)

	cfg := parameter.DefaultConfig()
	c, err := cfg.NewChain()
	if err != nil {
		t.Fatal(err)
	}
	renderer.RenderFrame(BuildFrame(c, cfg), HUD{Tick: 7})

	// Pin (350,150) lands in cell (43, 9)
	mainc, _, style, _ := screen.GetContent(43, 9)
	if mainc == ' ' {
		t.Fatal("no rope glyph at the pin")
	}
	fg, bg, _ := style.Decompose()
	if fg != palette.Rope {
		t.Errorf("rope color = %v, want %v", fg, palette.Rope)
	}
	if bg != palette.Background {
		t.Errorf("background = %v, want %v", bg, palette.Background)
	}

	// Ball center (350,340) lands in cell (43, 21)
	mainc, _, style, _ = screen.GetContent(43, 21)
	if mainc != '█' {
		t.Errorf("ball center glyph = %q, want full block", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != palette.Ball {
		t.Errorf("ball color = %v, want %v", fg, palette.Ball)
	}

	// Away from the chain stays blank
	if mainc, _, _, _ := screen.GetContent(5, 5); mainc != ' ' {
		t.Errorf("empty area glyph = %q", mainc)
	}
}

func TestRenderFrameStatusBar(t *testing.T) {
	screen := newSimScreen(t, 120, 10)
	renderer := NewTerminalRenderer(screen, NewPalette(false))

	renderer.RenderFrame(Frame{}, HUD{Tick: 42, BallSpeed: 1.5, SpacingError: 0.25})
	line := rowText(screen, 9, 120)
	if !strings.HasPrefix(line, parameter.StatusRunning) {
		t.Errorf("status line %q missing running badge", line)
	}
	if !strings.Contains(line, "tick 42") || !strings.Contains(line, "speed 1.50") || !strings.Contains(line, "err 0.250") {
		t.Errorf("status line %q missing diagnostics", line)
	}
	if !strings.Contains(line, parameter.HelpText) {
		t.Errorf("status line %q missing help", line)
	}

	renderer.RenderFrame(Frame{}, HUD{Paused: true, Muted: true})
	line = rowText(screen, 9, 120)
	if !strings.HasPrefix(line, parameter.StatusPaused) {
		t.Errorf("status line %q missing paused badge", line)
	}
	if !strings.Contains(line, "muted") {
		t.Errorf("status line %q missing mute flag", line)
	}
}

func TestRenderFrameNarrowScreen(t *testing.T) {
	screen := newSimScreen(t, 12, 3)
	renderer := NewTerminalRenderer(screen, NewPalette(true))

	cfg := parameter.DefaultConfig()
	c, err := cfg.NewChain()
	if err != nil {
		t.Fatal(err)
	}
	renderer.RenderFrame(BuildFrame(c, cfg), HUD{})

	if w, h := renderer.Canvas().Size(); w != 12 || h != 2 {
		t.Errorf("canvas = %dx%d, want 12x2", w, h)
	}
	if line := rowText(screen, 2, 12); strings.Contains(line, parameter.HelpText) {
		t.Error("help text drawn past the screen edge")
	}
}
