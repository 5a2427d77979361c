package lightsout

import (
	"github.com/vovakirdan/lightsout/internal/core"
)

const (
	hudHeight    = 3 // Title, stats, blank line
	footerHeight = 2 // Blank line, controls
	sideMargin   = 1
)

// Layout maps grid cells to screen rectangles. It is recomputed whenever
// the screen or grid size changes.
type Layout struct {
	Board core.Rect // Outer board area including gaps
	CellW int
	CellH int
	Gap   int // Spacing between cells and around the board
	rows  int
	cols  int
}

// ComputeLayout sizes cells to fit a screen of screenW x screenH.
// Terminal cells are about twice as tall as they are wide, so cells aim for
// a 2:1 width to height ratio to look square. On screens at or below
// compactWidth the gaps are dropped. ok is false when the board cannot fit.
func ComputeLayout(screenW, screenH, rows, cols, maxCellW, compactWidth int) (Layout, bool) {
	if rows < 1 || cols < 1 {
		return Layout{}, false
	}

	gap := 1
	if screenW <= compactWidth {
		gap = 0
	}

	cellW, cellH, ok := fitCells(screenW, screenH, rows, cols, maxCellW, gap)
	if !ok && gap > 0 {
		// Short but wide screens still fit once the gaps go.
		gap = 0
		cellW, cellH, ok = fitCells(screenW, screenH, rows, cols, maxCellW, gap)
	}
	if !ok {
		return Layout{}, false
	}

	boardW := cols*cellW + gap*(cols+1)
	boardH := rows*cellH + gap*(rows+1)

	return Layout{
		Board: core.NewRect((screenW-boardW)/2, hudHeight, boardW, boardH),
		CellW: cellW,
		CellH: cellH,
		Gap:   gap,
		rows:  rows,
		cols:  cols,
	}, true
}

// fitCells picks the largest cell size that fits with the given gap.
func fitCells(screenW, screenH, rows, cols, maxCellW, gap int) (cellW, cellH int, ok bool) {
	availW := screenW - 2*sideMargin
	availH := screenH - hudHeight - footerHeight

	cellW = (availW - gap*(cols+1)) / cols
	cellH = (availH - gap*(rows+1)) / rows

	// Keep the 2:1 aspect, whichever side is the constraint.
	cellW = core.Min(cellW, cellH*2)
	if maxCellW > 0 {
		cellW = core.Min(cellW, maxCellW)
	}
	cellH = core.Min(cellH, (cellW+1)/2)

	return cellW, cellH, cellW >= 2 && cellH >= 1
}

// CellRect returns the screen rectangle of cell (i, j).
func (l Layout) CellRect(i, j int) core.Rect {
	return core.NewRect(
		l.Board.X+l.Gap+j*(l.CellW+l.Gap),
		l.Board.Y+l.Gap+i*(l.CellH+l.Gap),
		l.CellW,
		l.CellH,
	)
}

// CellAt hit-tests a screen position. Positions on a gap or outside the
// board return ok == false.
func (l Layout) CellAt(x, y int) (c Coord, ok bool) {
	if l.CellW == 0 || !l.Board.Contains(x, y) {
		return Coord{}, false
	}

	relX := x - l.Board.X - l.Gap
	relY := y - l.Board.Y - l.Gap
	if relX < 0 || relY < 0 {
		return Coord{}, false
	}

	strideX := l.CellW + l.Gap
	strideY := l.CellH + l.Gap
	if relX%strideX >= l.CellW || relY%strideY >= l.CellH {
		return Coord{}, false
	}

	c = Coord{Row: relY / strideY, Col: relX / strideX}
	if c.Row >= l.rows || c.Col >= l.cols {
		return Coord{}, false
	}
	return c, true
}

// MinScreenSize returns the smallest screen that fits a rows x cols board.
func MinScreenSize(rows, cols int) (w, h int) {
	// Compact layout with 2x1 cells
	return cols*2 + 2*sideMargin, rows + hudHeight + footerHeight
}
