package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/pendulum/audio"
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/engine"
	"github.com/lixenwraith/pendulum/input"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/lixenwraith/pendulum/render"
)

func nrgba(c [4]uint8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Game implements the Ebitengine game interface; each Update is one simulation tick
type Game struct {
	cfg     parameter.Config
	loop    *engine.Loop
	machine *input.Machine
	sound   *audio.SoundManager

	frame render.Frame
	stats engine.Stats

	ropeColor, ballColor, bgColor color.NRGBA
}

// newGame builds the simulation; the loop is ticked from Update rather than its own worker
func newGame(cfg parameter.Config, sound *audio.SoundManager) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		sound:     sound,
		ropeColor: nrgba(parameter.RopeColor),
		ballColor: nrgba(parameter.BallColor),
		bgColor:   nrgba(parameter.BackgroundColor),
	}

	tracker := core.NewPointerTracker()
	loop, err := engine.NewLoop(cfg, tracker, func(c *core.Chain, s engine.Stats) {
		g.frame.Fill(c, cfg)
		g.stats = s
		g.sound.Observe(s.BallSpeed, s.Pointer)
	})
	if err != nil {
		return nil, err
	}
	g.loop = loop
	g.machine = input.NewMachine(tracker)
	return g, nil
}

// Update handles input and advances the simulation one tick
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.loop.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.loop.RequestReset()
		g.sound.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sound.ToggleMute()
	}

	mx, my := ebiten.CursorPosition()
	g.machine.Sample(float64(mx), float64(my), pressedButton())

	g.loop.Tick()
	return nil
}

// pressedButton reports the held mouse button, primary first
func pressedButton() core.Button {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return core.ButtonPrimary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return core.ButtonSecondary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return core.ButtonMiddle
	}
	return core.ButtonNone
}

// Draw renders rope segments, the ball and the status text
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)

	for _, s := range g.frame.Segments {
		vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), parameter.RopeStrokeWidth, g.ropeColor, true)
	}
	cx, cy := g.frame.Ball.Center()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(g.frame.Ball.Radius()), g.ballColor, true)

	status := parameter.StatusRunning
	if g.stats.Paused {
		status = parameter.StatusPaused
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s tick %d  speed %.2f  err %.3f\n%s",
		status, g.stats.Tick, g.stats.BallSpeed, g.stats.SpacingError, parameter.HelpText))
}

// Layout keeps the fixed canvas size; the window scales it
func (g *Game) Layout(w, h int) (int, int) {
	return parameter.CanvasWidth, parameter.CanvasHeight
}
