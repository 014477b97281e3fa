package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
)

// PointerSink receives canvas-space pointer events
// core.PointerTracker is the production sink
type PointerSink interface {
	Down(x, y float64, button core.Button)
	Move(x, y float64)
	Up()
}

// Machine translates tcell events into intents and pointer events
// tcell reports button state per event rather than press/release edges, so the machine tracks the held button
type Machine struct {
	sink PointerSink

	held         core.Button
	lastX, lastY float64
	seen         bool
}

// NewMachine creates a new input machine
func NewMachine(sink PointerSink) *Machine {
	return &Machine{sink: sink}
}

// Held returns the button currently considered held
func (m *Machine) Held() core.Button {
	return m.held
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning here
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(e)
	case *tcell.EventMouse:
		return m.processMouse(e)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return &Intent{Type: IntentQuit}
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case ' ':
			return &Intent{Type: IntentTogglePause}
		case 'r', 'R':
			return &Intent{Type: IntentReset}
		case 'm', 'M':
			return &Intent{Type: IntentToggleMute}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	cx, cy := ev.Position()
	x, y := CellToCanvas(cx, cy)
	m.Sample(x, y, buttonFromMask(ev.Buttons()))
	return &Intent{Type: IntentPointer}
}

// Sample feeds one polled pointer reading in canvas pixels, turning button level changes into Down/Up edges
// Drivers that poll instead of receiving events (the window driver) call this directly
func (m *Machine) Sample(x, y float64, pressed core.Button) {
	moved := !m.seen || x != m.lastX || y != m.lastY
	m.lastX, m.lastY, m.seen = x, y, true

	switch {
	case m.held == core.ButtonNone && pressed != core.ButtonNone:
		m.sink.Down(x, y, pressed)
		m.held = pressed
	case m.held != core.ButtonNone && pressed == core.ButtonNone:
		if moved {
			m.sink.Move(x, y)
		}
		m.sink.Up()
		m.held = core.ButtonNone
	default:
		// Hover or drag; a second button joining a drag does not retarget it
		if moved {
			m.sink.Move(x, y)
		}
	}
}

// buttonFromMask picks one button from a tcell mask, primary first; wheel bits are ignored
func buttonFromMask(mask tcell.ButtonMask) core.Button {
	switch {
	case mask&tcell.Button1 != 0:
		return core.ButtonPrimary
	case mask&tcell.Button2 != 0:
		return core.ButtonSecondary
	case mask&tcell.Button3 != 0:
		return core.ButtonMiddle
	}
	return core.ButtonNone
}

// CellToCanvas maps a terminal cell to the canvas pixel at its center
func CellToCanvas(cx, cy int) (x, y float64) {
	return float64(cx*parameter.CellWidthPx) + parameter.CellWidthPx/2,
		float64(cy*parameter.CellHeightPx) + parameter.CellHeightPx/2
}
