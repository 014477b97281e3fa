package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/audio"
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/engine"
	"github.com/lixenwraith/pendulum/input"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/lixenwraith/pendulum/render"
	"github.com/pkg/errors"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to "+parameter.LogDir+"/")
	muteFlag  = flag.Bool("mute", false, "Start with audio muted")
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, basic")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the driver crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "pendulum: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	palette := render.NewPalette(resolveTrueColor(*colorFlag, screen.Colors()))
	screen.SetStyle(tcell.StyleDefault.Background(palette.Background))
	screen.Clear()
	renderer := render.NewTerminalRenderer(screen, palette)

	// Audio is optional; the simulation runs silent without a device
	sound := audio.NewSoundManager(parameter.TickDelay)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	cfg := parameter.DefaultConfig()
	tracker := core.NewPointerTracker()

	var frame render.Frame
	loop, err := engine.NewLoop(cfg, tracker, func(c *core.Chain, s engine.Stats) {
		sound.Observe(s.BallSpeed, s.Pointer)
		frame.Fill(c, cfg)
		renderer.RenderFrame(frame, render.HUD{
			Tick:         s.Tick,
			Paused:       s.Paused,
			Muted:        sound.Muted(),
			BallSpeed:    s.BallSpeed,
			SpacingError: s.SpacingError,
		})
	})
	if err != nil {
		return err
	}

	machine := input.NewMachine(tracker)
	pump := newEventPump(screen)
	pump.start()
	defer pump.stop()

	loop.Start()
	defer loop.Stop()

	for ev := range pump.events() {
		intent := machine.Process(ev)
		if intent == nil {
			continue
		}

		switch intent.Type {
		case input.IntentQuit:
			log.Printf("quit requested")
			return nil
		case input.IntentTogglePause:
			log.Printf("paused: %v", loop.TogglePause())
		case input.IntentReset:
			loop.RequestReset()
			sound.Reset()
		case input.IntentToggleMute:
			log.Printf("muted: %v", sound.ToggleMute())
		case input.IntentResize:
			screen.Sync()
		}
	}
	return nil
}

// resolveTrueColor maps the -color flag and the terminal's reported palette size to a color mode
func resolveTrueColor(mode string, colors int) bool {
	switch mode {
	case "truecolor", "true", "24bit":
		return true
	case "basic", "16":
		return false
	default:
		return colors >= 256
	}
}
