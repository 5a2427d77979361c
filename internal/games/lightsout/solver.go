package lightsout

import (
	"errors"
	"math/bits"
)

// ErrUnsolvable is returned for boards no sequence of presses can clear.
var ErrUnsolvable = errors.New("lightsout: board is not solvable")

// maxNullity bounds the null-space search for the shortest solution.
// A 5x5 board has nullity 2. Boards past the bound get a valid solution
// that may not be the shortest.
const maxNullity = 12

// bitset is a fixed-width vector over GF(2).
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) get(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

func (b bitset) xor(o bitset) {
	for k := range b {
		b[k] ^= o[k]
	}
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b bitset) clone() bitset {
	return append(bitset(nil), b...)
}

// Solve returns a shortest set of presses that switches every light off, in
// row-major order. Presses commute and pressing a cell twice cancels out, so
// a solution never repeats a cell.
//
// The board is solved as the linear system A·x = b over GF(2), where A[k][p]
// is 1 when pressing p flips cell k. Among all solutions the one with the
// fewest presses is returned when the null space is small enough to search.
func Solve(g *Grid) ([]Coord, error) {
	n := g.rows * g.cols
	if n == 0 {
		return nil, nil
	}

	// Augmented matrix: columns 0..n-1 are presses, column n is the light state.
	m := make([]bitset, n)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			k := i*g.cols + j
			row := newBitset(n + 1)
			// Press p flips k exactly when k is in p's neighbourhood; the
			// relation is symmetric so k's own neighbourhood gives the row.
			for _, c := range g.Affected(i, j) {
				row.set(c.Row*g.cols + c.Col)
			}
			if g.cells[i][j].On {
				row.set(n)
			}
			m[k] = row
		}
	}

	// Reduce to row echelon form, clearing each pivot column in every other row.
	pivots := make([]int, 0, n)
	isPivot := make([]bool, n)
	rank := 0
	for col := 0; col < n && rank < n; col++ {
		sel := -1
		for r := rank; r < n; r++ {
			if m[r].get(col) {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		m[rank], m[sel] = m[sel], m[rank]
		for r := 0; r < n; r++ {
			if r != rank && m[r].get(col) {
				m[r].xor(m[rank])
			}
		}
		pivots = append(pivots, col)
		isPivot[col] = true
		rank++
	}

	// Rows past the rank have no coefficients left; a set light there is a contradiction.
	for r := rank; r < n; r++ {
		if m[r].get(n) {
			return nil, ErrUnsolvable
		}
	}

	// Particular solution with every free press off.
	best := newBitset(n)
	for r, col := range pivots {
		if m[r].get(n) {
			best.set(col)
		}
	}

	var basis []bitset
	for f := 0; f < n; f++ {
		if isPivot[f] {
			continue
		}
		v := newBitset(n)
		v.set(f)
		for r, col := range pivots {
			if m[r].get(f) {
				v.set(col)
			}
		}
		basis = append(basis, v)
	}

	if len(basis) > 0 && len(basis) <= maxNullity {
		// Walk every null-space combination in Gray-code order.
		cur := best.clone()
		bestCount := best.count()
		for step := 1; step < 1<<len(basis); step++ {
			cur.xor(basis[bits.TrailingZeros(uint(step))])
			if c := cur.count(); c < bestCount {
				bestCount = c
				best = cur.clone()
			}
		}
	}

	presses := make([]Coord, 0, best.count())
	for p := 0; p < n; p++ {
		if best.get(p) {
			presses = append(presses, Coord{Row: p / g.cols, Col: p % g.cols})
		}
	}
	return presses, nil
}

// Solvable reports whether the board can be cleared.
func Solvable(g *Grid) bool {
	_, err := Solve(g)
	return err == nil
}

// Hint returns a press that belongs to a shortest solution.
// ok is false when the board is already clear or cannot be solved.
func Hint(g *Grid) (c Coord, ok bool) {
	presses, err := Solve(g)
	if err != nil || len(presses) == 0 {
		return Coord{}, false
	}
	return presses[0], true
}

// Par returns the minimal number of presses for the board, or -1 if it
// cannot be solved.
func Par(g *Grid) int {
	presses, err := Solve(g)
	if err != nil {
		return -1
	}
	return len(presses)
}
