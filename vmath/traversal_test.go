package vmath

import (
	"math"
	"testing"
)

type cell struct{ x, y int }

func collect(x1, y1, x2, y2 float64) []cell {
	var out []cell
	Traverse(x1, y1, x2, y2, func(x, y int) bool {
		out = append(out, cell{x, y})
		return true
	})
	return out
}

func TestTraverseEndpointsAndContinuity(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"horizontal", 0.5, 0.5, 7.5, 0.5},
		{"vertical up", 2.2, 9.7, 2.2, 1.1},
		{"diagonal", 0.1, 0.2, 5.9, 4.8},
		{"steep negative", 8.4, 0.3, 6.1, 11.9},
		{"same cell", 3.2, 3.3, 3.8, 3.9},
		{"integer start leftward", 4, 2.5, 0.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := collect(tt.x1, tt.y1, tt.x2, tt.y2)
			if len(cells) == 0 {
				t.Fatal("no cells visited")
			}

			first, last := cells[0], cells[len(cells)-1]
			if first.x != int(math.Floor(tt.x1)) || first.y != int(math.Floor(tt.y1)) {
				t.Errorf("first cell = %v, want start cell", first)
			}
			if last.x != int(math.Floor(tt.x2)) || last.y != int(math.Floor(tt.y2)) {
				t.Errorf("last cell = %v, want end cell", last)
			}

			// Supercover: consecutive cells differ by at most one step per axis
			for i := 1; i < len(cells); i++ {
				dx := cells[i].x - cells[i-1].x
				dy := cells[i].y - cells[i-1].y
				if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
					t.Fatalf("gap or repeat between %v and %v", cells[i-1], cells[i])
				}
			}
		})
	}
}

func TestTraverseStopsOnFalse(t *testing.T) {
	n := 0
	Traverse(0.5, 0.5, 20.5, 0.5, func(x, y int) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Fatalf("callback ran %d times, want 3", n)
	}
}

func TestTraverseRejectsNonFinite(t *testing.T) {
	called := false
	Traverse(math.NaN(), 0, 5, 5, func(x, y int) bool {
		called = true
		return true
	})
	if called {
		t.Fatal("callback invoked for NaN endpoint")
	}
}
