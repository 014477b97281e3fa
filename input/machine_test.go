package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/core"
)

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestCellToCanvas(t *testing.T) {
	tests := []struct {
		cx, cy int
		x, y   float64
	}{
		{0, 0, 4, 8},
		{43, 9, 348, 152},
		{87, 31, 700, 504},
	}
	for _, tt := range tests {
		if x, y := CellToCanvas(tt.cx, tt.cy); x != tt.x || y != tt.y {
			t.Errorf("CellToCanvas(%d,%d) = (%v,%v), want (%v,%v)", tt.cx, tt.cy, x, y, tt.x, tt.y)
		}
	}
}

func TestMachineDragSequence(t *testing.T) {
	tr := core.NewPointerTracker()
	m := NewMachine(tr)

	// Hover
	if in := m.Process(mouse(10, 5, tcell.ButtonNone)); in == nil || in.Type != IntentPointer {
		t.Fatalf("hover intent = %v", in)
	}
	if s := tr.Snapshot(); s.IsDown || s.X != 84 || s.Y != 88 {
		t.Fatalf("after hover: %+v", s)
	}

	// Press
	m.Process(mouse(11, 5, tcell.Button1))
	s := tr.Snapshot()
	if !s.IsDown || s.Button != core.ButtonPrimary {
		t.Fatalf("after press: %+v", s)
	}
	if dx, dy := s.Delta(); dx != 8 || dy != 0 {
		t.Fatalf("press delta = (%v,%v), want (8,0)", dx, dy)
	}

	// Drag
	m.Process(mouse(11, 6, tcell.Button1))
	s = tr.Snapshot()
	if dx, dy := s.Delta(); dx != 0 || dy != 16 || !s.IsDown {
		t.Fatalf("drag state %+v", s)
	}

	// Repeated report at the same cell keeps the last delta
	m.Process(mouse(11, 6, tcell.Button1))
	if s2 := tr.Snapshot(); s2 != s {
		t.Fatalf("stationary report changed state: %+v -> %+v", s, s2)
	}

	// Release
	m.Process(mouse(11, 6, tcell.ButtonNone))
	s = tr.Snapshot()
	if s.IsDown {
		t.Fatal("still down after release")
	}
	if s.Button != core.ButtonPrimary {
		t.Errorf("released button = %v, want last held kept", s.Button)
	}
	if m.Held() != core.ButtonNone {
		t.Errorf("machine still holds %v", m.Held())
	}
}

func TestMachineSecondaryButton(t *testing.T) {
	tr := core.NewPointerTracker()
	m := NewMachine(tr)

	m.Process(mouse(3, 3, tcell.Button2))
	if s := tr.Snapshot(); !s.IsDown || s.Button != core.ButtonSecondary {
		t.Fatalf("state %+v, want secondary down", s)
	}

	// Primary joining does not retarget the drag
	m.Process(mouse(4, 3, tcell.Button1|tcell.Button2))
	if s := tr.Snapshot(); s.Button != core.ButtonSecondary {
		t.Fatalf("button = %v, want secondary", s.Button)
	}
}

func TestMachineIgnoresWheel(t *testing.T) {
	tr := core.NewPointerTracker()
	m := NewMachine(tr)

	m.Process(mouse(2, 2, tcell.WheelUp))
	if s := tr.Snapshot(); s.IsDown {
		t.Fatal("wheel treated as a press")
	}
}

func TestMachineKeys(t *testing.T) {
	m := NewMachine(core.NewPointerTracker())

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentTogglePause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntentNone
			if in := m.Process(tt.ev); in != nil {
				got = in.Type
			}
			if got != tt.want {
				t.Errorf("intent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMachineResize(t *testing.T) {
	m := NewMachine(core.NewPointerTracker())
	if in := m.Process(tcell.NewEventResize(80, 24)); in == nil || in.Type != IntentResize {
		t.Fatalf("resize intent = %v", in)
	}
}

func TestMachineSamplePixels(t *testing.T) {
	tr := core.NewPointerTracker()
	m := NewMachine(tr)

	m.Sample(100.5, 200, core.ButtonNone)
	m.Sample(101, 200, core.ButtonPrimary)
	m.Sample(104, 203, core.ButtonPrimary)
	s := tr.Snapshot()
	if !s.IsDown || s.X != 104 || s.Y != 203 {
		t.Fatalf("state %+v", s)
	}
	if dx, dy := s.Delta(); dx != 3 || dy != 3 {
		t.Fatalf("delta = (%v,%v), want (3,3)", dx, dy)
	}

	m.Sample(110, 203, core.ButtonNone)
	s = tr.Snapshot()
	if s.IsDown || s.X != 110 {
		t.Fatalf("after release %+v", s)
	}
}
