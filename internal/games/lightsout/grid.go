// Package lightsout implements the Lights Out puzzle: a grid of lights where
// pressing a cell toggles it and its orthogonal neighbours, and the goal is
// to switch every light off.
package lightsout

import (
	"errors"
	"fmt"
	"strings"
)

// MaxGridSize bounds the grid in either dimension.
const MaxGridSize = 12

var (
	// ErrInvalidSize is returned for grids outside 1..MaxGridSize.
	ErrInvalidSize = errors.New("lightsout: invalid grid size")
	// ErrParse is returned when a textual board cannot be read.
	ErrParse = errors.New("lightsout: cannot parse board")
)

// Coord addresses a cell by row (i) and column (j).
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Cell is a single light. X is the column and Y the row.
type Cell struct {
	X, Y int
	On   bool
}

// Grid is a fixed-size board of lights.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// neighbourOffsets lists the cells affected by a press, centre first.
var neighbourOffsets = [5]Coord{
	{0, 0},  // Center
	{-1, 0}, // Top
	{1, 0},  // Bottom
	{0, -1}, // Left
	{0, 1},  // Right
}

// NewGrid creates an all-off grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || rows > MaxGridSize || cols < 1 || cols > MaxGridSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]Cell, rows)
	for i := range g.cells {
		g.cells[i] = make([]Cell, cols)
		for j := range g.cells[i] {
			g.cells[i][j] = Cell{X: j, Y: i}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (i, j) addresses a cell.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Cell returns the cell at (i, j). Out-of-range coordinates yield an unlit
// cell carrying the requested coordinates.
func (g *Grid) Cell(i, j int) Cell {
	if !g.InBounds(i, j) {
		return Cell{X: j, Y: i}
	}
	return g.cells[i][j]
}

// IsOn reports whether the light at (i, j) is on.
func (g *Grid) IsOn(i, j int) bool {
	return g.Cell(i, j).On
}

// Set forces the light at (i, j) on or off. Used for building boards, not play.
func (g *Grid) Set(i, j int, on bool) {
	if g.InBounds(i, j) {
		g.cells[i][j].On = on
	}
}

// Toggle presses (i, j): the cell and its up/down/left/right neighbours
// inside the grid flip. There is no wraparound. Returns false and leaves
// the grid unchanged when (i, j) is out of range.
func (g *Grid) Toggle(i, j int) bool {
	if !g.InBounds(i, j) {
		return false
	}
	for _, off := range neighbourOffsets {
		ni, nj := i+off.Row, j+off.Col
		if g.InBounds(ni, nj) {
			g.cells[ni][nj].On = !g.cells[ni][nj].On
		}
	}
	return true
}

// Affected returns the cells a press at (i, j) flips.
func (g *Grid) Affected(i, j int) []Coord {
	if !g.InBounds(i, j) {
		return nil
	}
	out := make([]Coord, 0, len(neighbourOffsets))
	for _, off := range neighbourOffsets {
		ni, nj := i+off.Row, j+off.Col
		if g.InBounds(ni, nj) {
			out = append(out, Coord{Row: ni, Col: nj})
		}
	}
	return out
}

// LightsOut reports whether every light is off.
func (g *Grid) LightsOut() bool {
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].On {
				return false
			}
		}
	}
	return true
}

// LitCount returns how many lights are on.
func (g *Grid) LitCount() int {
	n := 0
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].On {
				n++
			}
		}
	}
	return n
}

// Clear switches every light off.
func (g *Grid) Clear() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j].On = false
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols}
	c.cells = make([][]Cell, g.rows)
	for i := range g.cells {
		c.cells[i] = append([]Cell(nil), g.cells[i]...)
	}
	return c
}

// Equal reports whether two grids have the same size and lights.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].On != other.cells[i][j].On {
				return false
			}
		}
	}
	return true
}

// String renders the grid as rows of '1' (on) and '0' (off) separated by '/'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for i := range g.cells {
		if i > 0 {
			sb.WriteByte('/')
		}
		for j := range g.cells[i] {
			if g.cells[i][j].On {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// ParseGrid reads a board written as rows separated by '/' or newlines.
// '1', '#', '*' and 'x' are lit cells; '0', '.', '-' and 'o' are unlit.
// Spaces inside a row are ignored. All rows must have the same length.
func ParseGrid(s string) (*Grid, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r", ""))
	if s == "" {
		return nil, fmt.Errorf("%w: empty board", ErrParse)
	}

	raw := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\n' })
	var rows [][]bool
	for _, line := range raw {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '1', '#', '*', 'x', 'X':
				row = append(row, true)
			case '0', '.', '-', 'o', 'O':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrParse, r, len(rows)+1)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrParse, len(rows)+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrParse)
	}

	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, on := range row {
			g.cells[i][j].On = on
		}
	}
	return g, nil
}
