package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/engine"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/pkg/errors"
)

// dragTicks is how long the scripted drag holds the ball
const dragTicks = 10

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// traceResult holds one sample per tick
type traceResult struct {
	BallX, BallY []float64
	Speed        []float64
	SpacingError []float64
	Finite       bool
}

// runTrace simulates ticks headlessly; a non-zero drag grabs the ball and sweeps it by drag pixels per tick
func runTrace(cfg parameter.Config, ticks int, drag float64) (traceResult, error) {
	if ticks <= 0 {
		return traceResult{}, errors.Errorf("tick count must be positive, got %d", ticks)
	}

	res := traceResult{
		BallX:        make([]float64, 0, ticks),
		BallY:        make([]float64, 0, ticks),
		Speed:        make([]float64, 0, ticks),
		SpacingError: make([]float64, 0, ticks),
		Finite:       true,
	}

	tracker := core.NewPointerTracker()
	loop, err := engine.NewLoop(cfg, tracker, func(c *core.Chain, s engine.Stats) {
		b := c.BallAnchor()
		res.BallX = append(res.BallX, b.X)
		res.BallY = append(res.BallY, b.Y)
		res.Speed = append(res.Speed, s.BallSpeed)
		res.SpacingError = append(res.SpacingError, s.SpacingError)
		if math.IsNaN(b.X) || math.IsInf(b.X, 0) || math.IsNaN(b.Y) || math.IsInf(b.Y, 0) {
			res.Finite = false
		}
	})
	if err != nil {
		return traceResult{}, err
	}

	if drag != 0 {
		b := loop.Chain().BallAnchor()
		tracker.Down(b.X, b.Y, cfg.DragButton)
	}
	for i := 0; i < ticks; i++ {
		if drag != 0 && i < dragTicks {
			s := tracker.Snapshot()
			tracker.Move(s.X+drag, s.Y)
		}
		if drag != 0 && i == dragTicks {
			tracker.Up()
		}
		loop.Tick()
	}

	return res, nil
}

// writeReport prints the summary table and trajectory plots
func writeReport(w io.Writer, res traceResult, width, height int) error {
	var s strings.Builder

	s.WriteString(headerStyle.Render("pendulum trace") + "\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	minX, maxX := span(res.BallX)
	_, maxSpeed := span(res.Speed)
	_, maxErr := span(res.SpacingError)
	row("ticks", fmt.Sprintf("%d", len(res.BallX)))
	row("ball x range", fmt.Sprintf("%.2f .. %.2f", minX, maxX))
	row("peak speed", fmt.Sprintf("%.3f px/tick", maxSpeed))
	row("peak error", fmt.Sprintf("%.3f px", maxErr))
	row("finite", fmt.Sprintf("%v", res.Finite))

	if len(res.BallX) > 0 {
		for _, p := range []struct {
			data    []float64
			caption string
		}{
			{res.BallX, "ball x (px)"},
			{res.BallY, "ball y (px)"},
			{res.Speed, "ball speed (px/tick)"},
		} {
			chart := asciigraph.Plot(p.data, asciigraph.Height(height), asciigraph.Width(width), asciigraph.Caption(p.caption))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	_, err := io.WriteString(w, s.String())
	return errors.Wrap(err, "failed to write report")
}

func span(v []float64) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 0
	}
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}
