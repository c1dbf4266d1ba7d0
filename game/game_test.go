package game

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateReplayFilename(t *testing.T) {
	config := NewGameConfig()
	when := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	board := emptyBoard(t, 3)
	name := config.generateReplayFilename(board, when)
	if !regexp.MustCompile(`^20240309_140507_3x3_other_[0-9a-f]{8}\.yaml$`).MatchString(name) {
		t.Fatalf("unexpected filename %q", name)
	}

	board.press(1, 1)
	board.ApplyMove(1, 1)
	if !board.HasWon() {
		t.Fatal("board should be won")
	}
	name = config.generateReplayFilename(board, when)
	if !strings.Contains(name, "_3x3_win_") {
		t.Fatalf("won board filename %q missing win marker", name)
	}
}

func TestSaveSnapshot(t *testing.T) {
	config := NewGameConfig()
	config.SavedSnapshotsDir = filepath.Join(t.TempDir(), "snapshots")

	board := emptyBoard(t, 3)
	board.ApplyMove(1, 1)

	path, err := config.saveSnapshot(board, time.Now())
	if err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}
	if filepath.Dir(path) != config.SavedSnapshotsDir {
		t.Fatalf("snapshot written to %s, want it in %s", path, config.SavedSnapshotsDir)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	snapshot, err := LoadSnapshot(string(contents))
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snapshot.Moves != 1 || snapshot.SerializedBoard != ".#.\n###\n.#." {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestSaveSnapshotDisabled(t *testing.T) {
	config := NewGameConfig()

	path, err := config.saveSnapshot(emptyBoard(t, 3), time.Now())
	if err != nil || path != "" {
		t.Fatalf("saveSnapshot without a directory = %q, %v", path, err)
	}
}

func TestSaveSnapshotIntoFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	config := NewGameConfig()
	config.SavedSnapshotsDir = file

	if _, err := config.saveSnapshot(emptyBoard(t, 3), time.Now()); err == nil {
		t.Fatal("saving into a regular file should fail")
	}
}

func TestGameConfigCreateBoard(t *testing.T) {
	config := NewGameConfig()
	config.Size = Easy.Size()
	config.Seed = 42

	board, err := config.CreateBoard(nil)
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if board.Size() != 3 || board.Seed() != 42 || board.Moves() != 0 {
		t.Fatalf("board size/seed/moves = %d/%d/%d", board.Size(), board.Seed(), board.Moves())
	}

	again, err := config.CreateBoard(nil)
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if !equalGrids(board.Grid(), again.Grid()) {
		t.Fatal("same seed produced different boards")
	}
}

func TestGameConfigCreateBoardFromSnapshot(t *testing.T) {
	config := NewGameConfig()
	config.Snapshot = &BoardSnapshot{Seed: 7, Moves: 3, SerializedBoard: "#...\n....\n....\n...#"}

	board, err := config.CreateBoard(nil)
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if board.Size() != 4 || board.Moves() != 3 || board.LitCount() != 2 {
		t.Fatalf("board size/moves/lit = %d/%d/%d", board.Size(), board.Moves(), board.LitCount())
	}
}

func TestDifficulty(t *testing.T) {
	if Hard.Size() != 7 || Hard.String() != "hard" {
		t.Fatalf("Hard = %d %s", Hard.Size(), Hard)
	}
	if Difficulty(4).String() != "custom" {
		t.Fatalf("Difficulty(4) = %s, want custom", Difficulty(4))
	}
	if Difficulties["easy"] != Easy {
		t.Fatal("easy preset missing")
	}
}

func equalGrids(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for row := range a {
		for col := range a[row] {
			if a[row][col] != b[row][col] {
				return false
			}
		}
	}
	return true
}
