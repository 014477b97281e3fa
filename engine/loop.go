package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/lixenwraith/pendulum/physics"
	"github.com/pkg/errors"
)

// Stats is the per-tick summary handed to the frame callback
type Stats struct {
	Tick         uint64
	Paused       bool
	BallSpeed    float64
	SpacingError float64
	Pointer      core.PointerState
}

// FrameFunc receives the chain after each tick, on the loop goroutine
// The chain is borrowed for the duration of the call and must not be retained or mutated
type FrameFunc func(c *core.Chain, s Stats)

// Loop owns the chain and runs the simulation on a dedicated worker
// Pointer samples come from a PointerTracker written by the input goroutine; the loop reads one snapshot per tick
type Loop struct {
	cfg     parameter.Config
	chain   *core.Chain
	pointer *core.PointerTracker
	onFrame FrameFunc

	isPaused atomic.Bool

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time

	// Tick counter, reset with the chain
	tickCount atomic.Uint64

	// Control channels
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}
}

// NewLoop validates the configuration and builds the chain
// onFrame may be nil for headless runs
func NewLoop(cfg parameter.Config, pointer *core.PointerTracker, onFrame FrameFunc) (*Loop, error) {
	chain, err := cfg.NewChain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create loop")
	}
	if pointer == nil {
		pointer = core.NewPointerTracker()
	}

	return &Loop{
		cfg:          cfg,
		chain:        chain,
		pointer:      pointer,
		onFrame:      onFrame,
		tickInterval: cfg.TickDelay,
		stopChan:     make(chan struct{}),
		resetChan:    make(chan struct{}, 1),
	}, nil
}

// Pointer returns the tracker the loop reads from
func (l *Loop) Pointer() *core.PointerTracker {
	return l.pointer
}

// Chain returns the simulated chain; only safe to read while the loop is not running
func (l *Loop) Chain() *core.Chain {
	return l.chain
}

// TickCount returns the ticks simulated since start or last reset
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Running reports whether the worker is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Pause stops physics; frames are still emitted so the display stays live
func (l *Loop) Pause() {
	l.isPaused.Store(true)
}

// Resume restarts physics
func (l *Loop) Resume() {
	l.isPaused.Store(false)
}

// TogglePause flips the pause state and returns the new value
func (l *Loop) TogglePause() bool {
	for {
		old := l.isPaused.Load()
		if l.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused reports the pause state
func (l *Loop) IsPaused() bool {
	return l.isPaused.Load()
}

// RequestReset asks the loop to restore the initial chain before its next tick
// Non-blocking; repeated requests before the loop observes them collapse into one
func (l *Loop) RequestReset() {
	select {
	case l.resetChan <- struct{}{}:
	default:
	}
}

// Start begins the loop on a worker goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		log.Printf("engine: loop started, tick %v", l.tickInterval)
		l.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the worker to exit
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
			log.Printf("engine: loop stopped after %d ticks", l.tickCount.Load())
		}
	})
}

// Tick runs one iteration synchronously: pending reset, then physics unless paused, then the frame callback
// Used by the worker and by headless drivers; must not be called while the worker runs
func (l *Loop) Tick() {
	select {
	case <-l.resetChan:
		l.executeReset()
	default:
	}

	if !l.isPaused.Load() {
		physics.Step(l.chain, l.pointer.Snapshot(), l.cfg)
		l.tickCount.Add(1)
	}

	if l.onFrame != nil {
		l.onFrame(l.chain, l.stats())
	}
}

// run ticks on a drift-corrected deadline until stopped
func (l *Loop) run() {
	defer l.wg.Done()

	if l.tickInterval <= 0 {
		l.runUnpaced()
		return
	}

	l.nextTickDeadline = time.Now().Add(l.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		l.Tick()

		now := time.Now()
		l.nextTickDeadline = l.nextTickDeadline.Add(l.tickInterval)
		maxBehind := l.tickInterval * 2
		if now.Sub(l.nextTickDeadline) > maxBehind {
			l.nextTickDeadline = now.Add(l.tickInterval)
		}

		sleepDuration := l.nextTickDeadline.Sub(now)
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-l.stopChan:
			return
		}
	}
}

// runUnpaced ticks back to back; a zero tick delay is valid and only bounded by stop
func (l *Loop) runUnpaced() {
	for {
		select {
		case <-l.stopChan:
			return
		default:
		}
		l.Tick()
	}
}

// executeReset restores the initial layout and clears the tick counter
func (l *Loop) executeReset() {
	l.chain.Reset()
	l.tickCount.Store(0)
	log.Printf("engine: chain reset")
}

func (l *Loop) stats() Stats {
	sum, _ := physics.SpacingError(l.chain)
	return Stats{
		Tick:         l.tickCount.Load(),
		Paused:       l.isPaused.Load(),
		BallSpeed:    physics.BallSpeed(l.chain),
		SpacingError: sum,
		Pointer:      l.pointer.Snapshot(),
	}
}
