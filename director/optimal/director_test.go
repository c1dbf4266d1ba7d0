package optimal

import (
	"testing"

	"github.com/they4kman/lightsout/game"
)

func TestDirectorSolvesShuffledBoards(t *testing.T) {
	for _, size := range []uint{3, 4, 5, 7} {
		director := &Director{}
		board, err := game.NewBoard(game.BoardConfig{
			Size:     size,
			Seed:     int64(100 + size),
			Director: director,
		})
		if err != nil {
			t.Fatalf("NewBoard(%d): %v", size, err)
		}
		if board.IsSolved() {
			continue
		}

		planned := director.Remaining()
		for i := 0; i < planned && board.CanPlay(); i++ {
			if !board.RequestDirectorAct() {
				t.Fatalf("%dx%d: director stopped after %d of %d presses", size, size, i, planned)
			}
		}

		if !board.HasWon() {
			t.Fatalf("%dx%d: board not won after the planned presses", size, size)
		}
		if board.Moves() != uint(planned) {
			t.Errorf("%dx%d: %d moves, want %d", size, size, board.Moves(), planned)
		}
		if board.RequestDirectorAct() {
			t.Errorf("%dx%d: director acted on a won board", size, size)
		}
	}
}

func TestDirectorFollowsPlayerMoves(t *testing.T) {
	snapshot, err := game.LoadSnapshot("seed: 1\nmoves: 0\nboard: |-\n  .#.\n  ###\n  .#.\n")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	director := &Director{}
	board, err := snapshot.CreateBoard(game.BoardConfig{Director: director})
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if director.Remaining() != 1 {
		t.Fatalf("plan has %d presses, want 1", director.Remaining())
	}

	// A stray player press has to be undone, so it joins the plan
	board.ApplyMove(0, 0)
	if director.Remaining() != 2 {
		t.Fatalf("plan has %d presses after a stray move, want 2", director.Remaining())
	}

	for board.RequestDirectorAct() {
	}

	if !board.HasWon() {
		t.Fatal("director did not finish the board")
	}
	if board.Moves() != 3 {
		t.Errorf("moves = %d, want 3", board.Moves())
	}
}

func TestDirectorHint(t *testing.T) {
	snapshot, err := game.LoadSnapshot("board: |-\n  #..\n  ##.\n  #..\n")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	board, err := snapshot.CreateBoard(game.BoardConfig{Director: &Director{}})
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}

	cell, ok := board.RequestHint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if cell.Row() != 1 || cell.Col() != 0 {
		t.Errorf("hint at %v, want Cell(1, 0)", cell)
	}
	if board.Moves() != 0 {
		t.Errorf("a hint must not move, moves = %d", board.Moves())
	}
	if annotation, ok := board.LatestAnnotation(); !ok || annotation.Type != game.AnnotateHint || annotation.Cell != cell {
		t.Errorf("hint not annotated: %+v", annotation)
	}
}
