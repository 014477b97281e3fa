package core

import "sync/atomic"

// Button identifies a pointer button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// PointerState is one immutable pointer sample in canvas pixels
type PointerState struct {
	X, Y         float64
	PrevX, PrevY float64
	IsDown       bool
	Button       Button
}

// Delta returns the displacement between the last two samples
func (s PointerState) Delta() (dx, dy float64) {
	return s.X - s.PrevX, s.Y - s.PrevY
}

// PointerTracker publishes pointer samples from the input goroutine to the simulation loop
// Writers swap in a fresh PointerState; readers load one snapshot per tick. Neither side blocks
type PointerTracker struct {
	state atomic.Pointer[PointerState]
}

// NewPointerTracker returns a tracker at the origin with no button held
func NewPointerTracker() *PointerTracker {
	t := &PointerTracker{}
	t.state.Store(&PointerState{})
	return t
}

// Snapshot returns the latest published state
func (t *PointerTracker) Snapshot() PointerState {
	return *t.state.Load()
}

// Down records a press at (x, y): the previous sample shifts back and the button is held
func (t *PointerTracker) Down(x, y float64, button Button) {
	t.update(func(s *PointerState) {
		s.PrevX, s.PrevY = s.X, s.Y
		s.X, s.Y = x, y
		s.IsDown = true
		s.Button = button
	})
}

// Move records a new position; the held button is unchanged
func (t *PointerTracker) Move(x, y float64) {
	t.update(func(s *PointerState) {
		s.PrevX, s.PrevY = s.X, s.Y
		s.X, s.Y = x, y
	})
}

// Up releases the held button; position and last button are kept
func (t *PointerTracker) Up() {
	t.update(func(s *PointerState) {
		s.IsDown = false
	})
}

// update applies fn to a copy of the current state and publishes it, retrying on concurrent writers
func (t *PointerTracker) update(fn func(*PointerState)) {
	for {
		old := t.state.Load()
		next := *old
		fn(&next)
		if t.state.CompareAndSwap(old, &next) {
			return
		}
	}
}
