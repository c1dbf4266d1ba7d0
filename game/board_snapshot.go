package game

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

const (
	litChar = '#'
	offChar = '.'
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Moves           uint   `yaml:"moves"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	var rows strings.Builder
	for row := range board.cells {
		if row > 0 {
			rows.WriteByte('\n')
		}
		for col := range board.cells[row] {
			rows.WriteByte(board.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		Moves:           board.moves,
		SerializedBoard: rows.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Grid parses the serialized board, checking it is square and contains only
// lit/off cells.
func (snapshot *BoardSnapshot) Grid() ([][]bool, error) {
	serialized := strings.TrimSpace(strings.ReplaceAll(snapshot.SerializedBoard, "\r\n", "\n"))
	if serialized == "" {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}

	rows := strings.Split(serialized, "\n")
	size := len(rows)

	grid := make([][]bool, size)
	for r, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, r, len(line), size)
		}

		grid[r] = make([]bool, size)
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case litChar:
				grid[r][c] = true
			case offChar:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrInvalidSnapshot, line[c], r, c)
			}
		}
	}

	return grid, nil
}

// CreateBoard restores the snapshotted grid and move count. The board is not
// shuffled. config.Size and config.Seed are taken from the snapshot.
func (snapshot *BoardSnapshot) CreateBoard(config BoardConfig) (*Board, error) {
	grid, err := snapshot.Grid()
	if err != nil {
		return nil, err
	}

	config.Size = uint(len(grid))
	config.Seed = snapshot.Seed
	board, err := createBoard(config)
	if err != nil {
		return nil, err
	}

	for row := range grid {
		for col, isLit := range grid[row] {
			if isLit {
				board.ToggleCell(row, col)
			}
		}
	}

	board.moves = snapshot.Moves
	if board.HasWon() {
		board.state = Won
	} else {
		board.startGame()
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if _, err := snapshot.Grid(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (cell *Cell) serialize() byte {
	if cell.isLit {
		return litChar
	}
	return offChar
}
