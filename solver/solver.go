// Package solver finds the presses that switch every light of a Lights Out
// board off.
//
// Pressing a cell flips it and its axis neighbours. Over GF(2) a press is
// self-inverse and presses commute, so a solution is a set of cells x with
// A·x = b, where A is the press matrix and b the lit cells. The system is
// reduced by Gaussian elimination on bitset rows; when the board has a
// non-trivial null space, every solution is enumerated to return the one with
// the fewest presses.
package solver

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrNotSquare  = errors.New("grid is not square")
	ErrUnsolvable = errors.New("grid has no solution")
)

// Null spaces larger than this are not enumerated; the particular solution is
// returned as is.
const maxEnumeratedNullity = 16

type Position struct {
	Row, Col int
}

type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

func (b bitset) test(i int) bool {
	return (b[i>>6]>>(uint(i)&63))&1 == 1
}

func (b bitset) xor(other bitset) {
	for k := range b {
		b[k] ^= other[k]
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
	out := make(bitset, len(b))
	copy(out, b)
	return out
}

type equation struct {
	coef bitset
	rhs  bool
}

// Solve returns, indexed [row][col], the cells to press to switch every light
// of grid off.
func Solve(grid [][]bool) ([][]bool, error) {
	n := len(grid)
	for r, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
	}

	x, err := solve(grid, n)
	if err != nil {
		return nil, err
	}

	presses := make([][]bool, n)
	for r := 0; r < n; r++ {
		presses[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			presses[r][c] = x.test(r*n + c)
		}
	}
	return presses, nil
}

// Presses is Solve flattened to a row-major list of cells.
func Presses(grid [][]bool) ([]Position, error) {
	solution, err := Solve(grid)
	if err != nil {
		return nil, err
	}

	var positions []Position
	for r := range solution {
		for c, press := range solution[r] {
			if press {
				positions = append(positions, Position{Row: r, Col: c})
			}
		}
	}
	return positions, nil
}

func buildSystem(grid [][]bool, n int) []equation {
	nVars := n * n
	eqs := make([]equation, nVars)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			coef := newBitset(nVars)
			coef.set(r*n + c)
			if r > 0 {
				coef.set((r-1)*n + c)
			}
			if r < n-1 {
				coef.set((r+1)*n + c)
			}
			if c > 0 {
				coef.set(r*n + c - 1)
			}
			if c < n-1 {
				coef.set(r*n + c + 1)
			}
			eqs[r*n+c] = equation{coef: coef, rhs: grid[r][c]}
		}
	}
	return eqs
}

func solve(grid [][]bool, n int) (bitset, error) {
	nVars := n * n
	eqs := buildSystem(grid, n)

	pivRow := 0
	pivCols := make([]int, 0, nVars)
	isPivot := make([]bool, nVars)

	for col := 0; col < nVars && pivRow < len(eqs); col++ {
		p := -1
		for r := pivRow; r < len(eqs); r++ {
			if eqs[r].coef.test(col) {
				p = r
				break
			}
		}
		if p == -1 {
			continue
		}
		eqs[pivRow], eqs[p] = eqs[p], eqs[pivRow]
		pivCols = append(pivCols, col)
		isPivot[col] = true

		for r := range eqs {
			if r != pivRow && eqs[r].coef.test(col) {
				eqs[r].coef.xor(eqs[pivRow].coef)
				eqs[r].rhs = eqs[r].rhs != eqs[pivRow].rhs
			}
		}
		pivRow++
	}

	// Rows below the last pivot are all zero; a lit right-hand side there is 0 = 1
	for r := pivRow; r < len(eqs); r++ {
		if eqs[r].rhs {
			return nil, ErrUnsolvable
		}
	}

	// Particular solution with every free variable at 0
	x := newBitset(nVars)
	for i, col := range pivCols {
		if eqs[i].rhs {
			x.set(col)
		}
	}

	var nullBasis []bitset
	for free := 0; free < nVars; free++ {
		if isPivot[free] {
			continue
		}
		v := newBitset(nVars)
		v.set(free)
		for i, col := range pivCols {
			if eqs[i].coef.test(free) {
				v.set(col)
			}
		}
		nullBasis = append(nullBasis, v)
	}

	if len(nullBasis) == 0 || len(nullBasis) > maxEnumeratedNullity {
		return x, nil
	}
	return fewestPresses(x, nullBasis), nil
}

// fewestPresses walks every solution x + span(basis) in Gray-code order, so
// each step is a single xor.
func fewestPresses(x bitset, basis []bitset) bitset {
	best := x.clone()
	bestCount := best.count()

	current := x.clone()
	for i := uint64(1); i < 1<<uint(len(basis)); i++ {
		current.xor(basis[bits.TrailingZeros64(i)])
		if count := current.count(); count < bestCount {
			best = current.clone()
			bestCount = count
		}
	}
	return best
}

// Apply presses every cell marked in presses on a copy of grid and returns it.
func Apply(grid [][]bool, presses [][]bool) [][]bool {
	n := len(grid)
	out := make([][]bool, n)
	for r := range grid {
		out[r] = append([]bool(nil), grid[r]...)
	}

	flip := func(r, c int) {
		if r >= 0 && r < n && c >= 0 && c < n {
			out[r][c] = !out[r][c]
		}
	}
	for r := range presses {
		for c, press := range presses[r] {
			if press {
				flip(r, c)
				flip(r-1, c)
				flip(r+1, c)
				flip(r, c-1)
				flip(r, c+1)
			}
		}
	}
	return out
}
