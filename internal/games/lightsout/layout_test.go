package lightsout

import (
	"testing"

	"github.com/vovakirdan/lightsout/internal/core"
)

func TestComputeLayoutStandard(t *testing.T) {
	l, ok := ComputeLayout(80, 24, 5, 5, 12, 40)
	if !ok {
		t.Fatal("5x5 board should fit an 80x24 screen")
	}

	if l.CellW != 4 || l.CellH != 2 || l.Gap != 1 {
		t.Errorf("cell = %dx%d gap %d, want 4x2 gap 1", l.CellW, l.CellH, l.Gap)
	}
	if want := core.NewRect(27, 3, 26, 16); l.Board != want {
		t.Errorf("Board = %+v, want %+v", l.Board, want)
	}
	if want := core.NewRect(28, 4, 4, 2); l.CellRect(0, 0) != want {
		t.Errorf("CellRect(0, 0) = %+v, want %+v", l.CellRect(0, 0), want)
	}
}

func TestComputeLayoutCompact(t *testing.T) {
	l, ok := ComputeLayout(30, 15, 5, 5, 12, 40)
	if !ok {
		t.Fatal("5x5 board should fit a 30x15 screen")
	}
	if l.Gap != 0 {
		t.Errorf("compact screens should drop the gap, got %d", l.Gap)
	}
	if l.CellW != 4 || l.CellH != 2 {
		t.Errorf("cell = %dx%d, want 4x2", l.CellW, l.CellH)
	}
}

func TestComputeLayoutShortWideScreen(t *testing.T) {
	l, ok := ComputeLayout(80, 10, 5, 5, 12, 40)
	if !ok {
		t.Fatal("5x5 board should fit an 80x10 screen without gaps")
	}
	if l.Gap != 0 || l.CellW != 2 || l.CellH != 1 {
		t.Errorf("layout = %dx%d gap %d, want 2x1 gap 0", l.CellW, l.CellH, l.Gap)
	}
}

func TestComputeLayoutMaxCellWidth(t *testing.T) {
	l, ok := ComputeLayout(200, 80, 3, 3, 6, 40)
	if !ok {
		t.Fatal("3x3 board should fit a 200x80 screen")
	}
	if l.CellW != 6 || l.CellH != 3 {
		t.Errorf("cell = %dx%d, want capped 6x3", l.CellW, l.CellH)
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	if _, ok := ComputeLayout(10, 5, 5, 5, 12, 40); ok {
		t.Error("5x5 board should not fit a 10x5 screen")
	}

	w, h := MinScreenSize(5, 5)
	if _, ok := ComputeLayout(w, h, 5, 5, 12, 40); !ok {
		t.Errorf("MinScreenSize %dx%d should fit the board", w, h)
	}
	if _, ok := ComputeLayout(w-1, h, 5, 5, 12, 40); ok {
		t.Errorf("one column less than MinScreenSize should not fit")
	}
}

func TestCellAtRoundTrip(t *testing.T) {
	for _, screen := range [][2]int{{80, 24}, {30, 15}, {120, 40}} {
		l, ok := ComputeLayout(screen[0], screen[1], 5, 5, 12, 40)
		if !ok {
			t.Fatalf("layout for %v failed", screen)
		}
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				r := l.CellRect(i, j)
				// Every character of the cell maps back to it.
				for y := r.Y; y < r.Bottom(); y++ {
					for x := r.X; x < r.Right(); x++ {
						c, ok := l.CellAt(x, y)
						if !ok || c != (Coord{Row: i, Col: j}) {
							t.Errorf("%v: CellAt(%d, %d) = %v, %v, want (%d, %d)", screen, x, y, c, ok, i, j)
						}
					}
				}
			}
		}
	}
}

func TestCellAtMisses(t *testing.T) {
	l, _ := ComputeLayout(80, 24, 5, 5, 12, 40)

	tests := []struct {
		name string
		x, y int
	}{
		{"left border gap", 27, 4},
		{"gap between columns", 32, 4},
		{"gap between rows", 28, 6},
		{"above board", 30, 0},
		{"right of board", 79, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c, ok := l.CellAt(tc.x, tc.y); ok {
				t.Errorf("CellAt(%d, %d) = %v, expected miss", tc.x, tc.y, c)
			}
		})
	}

	var zero Layout
	if _, ok := zero.CellAt(0, 0); ok {
		t.Error("zero layout should never hit")
	}
}
