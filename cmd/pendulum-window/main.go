package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/pendulum/audio"
	"github.com/lixenwraith/pendulum/parameter"
)

var muteFlag = flag.Bool("mute", false, "Start with audio muted")

// main sets up and runs the window
func main() {
	flag.Parse()

	cfg := parameter.DefaultConfig()

	sound := audio.NewSoundManager(cfg.TickDelay)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	game, err := newGame(cfg, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pendulum-window: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(parameter.CanvasWidth, parameter.CanvasHeight)
	ebiten.SetWindowTitle("Pendulum")
	ebiten.SetTPS(int(time.Second / cfg.TickDelay))

	// Returning ebiten.Termination from Update ends RunGame with a nil error
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "pendulum-window: %v\n", err)
		os.Exit(1)
	}
}
