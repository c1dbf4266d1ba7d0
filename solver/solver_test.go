package solver

import (
	"errors"
	"math/rand"
	"testing"
)

func parseGrid(rows ...string) [][]bool {
	grid := make([][]bool, len(rows))
	for r, row := range rows {
		grid[r] = make([]bool, len(row))
		for c, ch := range row {
			grid[r][c] = ch == '#'
		}
	}
	return grid
}

func isDark(grid [][]bool) bool {
	for _, row := range grid {
		for _, lit := range row {
			if lit {
				return false
			}
		}
	}
	return true
}

func countPresses(presses [][]bool) int {
	n := 0
	for _, row := range presses {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	return n
}

func TestSolveSinglePress(t *testing.T) {
	// The pattern left by pressing the centre of a dark 3x3 board
	grid := parseGrid(
		".#.",
		"###",
		".#.",
	)

	positions, err := Presses(grid)
	if err != nil {
		t.Fatalf("Presses: %v", err)
	}
	if len(positions) != 1 || positions[0] != (Position{Row: 1, Col: 1}) {
		t.Fatalf("Presses = %v, want [{1 1}]", positions)
	}
}

func TestSolveDarkBoard(t *testing.T) {
	positions, err := Presses(parseGrid("....", "....", "....", "...."))
	if err != nil {
		t.Fatalf("Presses: %v", err)
	}
	if len(positions) != 0 {
		t.Fatalf("dark board needs no presses, got %v", positions)
	}
}

func TestSolveRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 9; n++ {
		for trial := 0; trial < 20; trial++ {
			dark := make([][]bool, n)
			scramble := make([][]bool, n)
			for r := range dark {
				dark[r] = make([]bool, n)
				scramble[r] = make([]bool, n)
			}
			for i := 0; i < n*5; i++ {
				r, c := rng.Intn(n), rng.Intn(n)
				scramble[r][c] = !scramble[r][c]
			}
			grid := Apply(dark, scramble)

			presses, err := Solve(grid)
			if err != nil {
				t.Fatalf("%dx%d trial %d: Solve: %v", n, n, trial, err)
			}
			if !isDark(Apply(grid, presses)) {
				t.Fatalf("%dx%d trial %d: presses do not solve the board", n, n, trial)
			}
			if got, limit := countPresses(presses), countPresses(scramble); got > limit {
				t.Errorf("%dx%d trial %d: %d presses, but %d are known to work", n, n, trial, got, limit)
			}
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	// A lone corner light on 5x5 is orthogonal to neither null vector of the press matrix
	grid := parseGrid(
		"#....",
		".....",
		".....",
		".....",
		".....",
	)

	_, err := Solve(grid)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("Solve error = %v, want ErrUnsolvable", err)
	}
}

func TestSolveFewestPresses(t *testing.T) {
	// Every solvable 5x5 board has four solutions
	dark := parseGrid(".....", ".....", ".....", ".....", ".....")
	corners := parseGrid(
		"#...#",
		".....",
		".....",
		".....",
		"#...#",
	)
	grid := Apply(dark, corners)

	presses, err := Solve(grid)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !isDark(Apply(grid, presses)) {
		t.Fatal("presses do not solve the board")
	}
	if got := countPresses(presses); got > 4 {
		t.Errorf("got %d presses, want at most 4", got)
	}
}

func TestSolveNotSquare(t *testing.T) {
	_, err := Solve(parseGrid("..", "..."))
	if !errors.Is(err, ErrNotSquare) {
		t.Fatalf("Solve error = %v, want ErrNotSquare", err)
	}
}

func TestApplyIsSelfInverse(t *testing.T) {
	grid := parseGrid("#.#", ".#.", "##.")
	presses := parseGrid("#..", "..#", ".#.")

	if got := Apply(Apply(grid, presses), presses); !equalGrids(got, grid) {
		t.Fatalf("pressing twice changed the board: %v", got)
	}
}

func equalGrids(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}
