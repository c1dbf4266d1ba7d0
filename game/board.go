package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gammazero/deque"
)

var ErrInvalidSize = errors.New("board size must be a positive integer")

// RandSource supplies shuffle coordinates. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Offsets of the cells flipped by a single press, the pressed cell first
var crossOffsets = [5][2]int{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

type Board struct {
	size  uint // in number of cells, per side
	cells [][]Cell

	state         BoardState
	moves         uint
	seed          int64
	shuffleFactor uint
	shuffleMode   ShuffleMode
	rand          RandSource

	director            Director
	directorAnnotations deque.Deque
	directorFrame       uint

	onGameEnd func(*Board)
	onChange  func(*Board)
}

type BoardConfig struct {
	Size uint

	// Presses per unit of side length applied by Randomize; 0 means DefaultShuffleFactor
	ShuffleFactor uint
	// Whether Randomize presses or single-toggles each random cell
	ShuffleMode ShuffleMode

	// Seed for the default rand source; 0 picks one from the clock
	Seed int64
	// Overrides the seeded rand source, when set
	Rand RandSource

	Director Director

	OnGameEnd func(*Board)
	OnChange  func(*Board)
}

// NewBoard allocates an all-off board of the configured size and shuffles it,
// so the returned board is always the post-shuffle one.
func NewBoard(config BoardConfig) (*Board, error) {
	board, err := createBoard(config)
	if err != nil {
		return nil, err
	}

	board.Randomize()
	return board, nil
}

func createBoard(config BoardConfig) (*Board, error) {
	if config.Size == 0 {
		return nil, ErrInvalidSize
	}

	if config.ShuffleFactor == 0 {
		config.ShuffleFactor = DefaultShuffleFactor
	}

	board := &Board{
		state:         Ongoing,
		size:          config.Size,
		cells:         make([][]Cell, config.Size),
		shuffleFactor: config.ShuffleFactor,
		shuffleMode:   config.ShuffleMode,
		director:      config.Director,
		onGameEnd:     config.OnGameEnd,
		onChange:      config.OnChange,
	}

	if config.Rand != nil {
		board.rand = config.Rand
		board.seed = config.Seed
	} else {
		if config.Seed == 0 {
			config.Seed = time.Now().UnixNano()
		}
		board.seed = config.Seed
		board.rand = rand.New(rand.NewSource(config.Seed))
	}

	cellIdx := uint(0)
	for row := uint(0); row < config.Size; row++ {
		board.cells[row] = make([]Cell, config.Size)

		for col := uint(0); col < config.Size; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.idx = cellIdx
			cell.row, cell.col = row, col
			cell.isDirty = true

			cellIdx++
		}
	}

	return board, nil
}

func (board *Board) Size() uint {
	return board.size
}

func (board *Board) NumCells() uint {
	return board.size * board.size
}

func (board *Board) Moves() uint {
	return board.moves
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Rand() RandSource {
	return board.rand
}

// CellAt returns nil for coordinates outside the board.
func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < int(board.size) && col < int(board.size) {
		return &board.cells[row][col]
	}
	return nil
}

func (board *Board) Cells() <-chan *Cell {
	out := make(chan *Cell)
	go func() {
		for row := range board.cells {
			for col := range board.cells[row] {
				out <- &board.cells[row][col]
			}
		}
		close(out)
	}()
	return out
}

// Grid returns a copy of the lit state of every cell, indexed [row][col].
func (board *Board) Grid() [][]bool {
	grid := make([][]bool, board.size)
	for row := range board.cells {
		grid[row] = make([]bool, board.size)
		for col := range board.cells[row] {
			grid[row][col] = board.cells[row][col].isLit
		}
	}
	return grid
}

func (board *Board) LitCount() uint {
	count := uint(0)
	for row := range board.cells {
		for col := range board.cells[row] {
			if board.cells[row][col].isLit {
				count++
			}
		}
	}
	return count
}

// Randomize applies size*shuffleFactor presses (or single toggles, with
// ShuffleToggles) at random cells, then resets the move counter. Every press
// can be undone by pressing again, so a pressed shuffle can always be solved.
func (board *Board) Randomize() {
	n := int(board.size)
	for i := uint(0); i < board.size*board.shuffleFactor; i++ {
		row := board.rand.Intn(n)
		col := board.rand.Intn(n)
		if board.shuffleMode == ShuffleToggles {
			board.ToggleCell(row, col)
		} else {
			board.press(row, col)
		}
	}

	board.moves = 0
	board.state = Ongoing
	for board.directorAnnotations.Len() > 0 {
		board.directorAnnotations.PopFront()
	}
	board.startGame()
	board.changed()
}

// ToggleCell flips a single cell. Coordinates outside the board are ignored.
// A toggle is never counted as a move.
func (board *Board) ToggleCell(row, col int) {
	if cell := board.CellAt(row, col); cell != nil {
		cell.toggle()
	}
}

func (board *Board) press(row, col int) {
	for _, offset := range crossOffsets {
		board.ToggleCell(row+offset[0], col+offset[1])
	}
}

// ApplyMove presses (row, col): the cell and its four axis neighbours flip,
// whichever of them lie on the board, and the move counter goes up by one.
// Returns the move count.
//
// Won is terminal: once a move solves the board, further moves are ignored
// and leave both the grid and the count unchanged until a new board is made
// (see "Moves after a win" in DESIGN.md).
func (board *Board) ApplyMove(row, col int) uint {
	if board.state == Won {
		return board.moves
	}

	board.press(row, col)
	board.moves++

	if board.director != nil {
		if cell := board.CellAt(row, col); cell != nil {
			board.director.MoveApplied(cell)
		}
	}

	if board.IsSolved() {
		board.win()
	}
	board.changed()

	return board.moves
}

// IsSolved reports whether every cell is off.
func (board *Board) IsSolved() bool {
	for row := range board.cells {
		for col := range board.cells[row] {
			if board.cells[row][col].isLit {
				return false
			}
		}
	}
	return true
}

// HasWon is IsSolved once the player has moved at least once. A board that
// happens to be dark straight after shuffling is not a win.
func (board *Board) HasWon() bool {
	return board.moves > 0 && board.IsSolved()
}

func (board *Board) CanPlay() bool {
	return board.state != Won
}

func (board *Board) IsPaused() bool {
	return board.state == Paused
}

func (board *Board) TogglePaused() {
	switch board.state {
	case Ongoing:
		board.state = Paused
	case Paused:
		board.state = Ongoing
	}
}

func (board *Board) HasDirector() bool {
	return board.director != nil
}

// RequestDirectorAct asks the director for one move and applies it. Returns
// whether a move was made.
func (board *Board) RequestDirectorAct() bool {
	if board.director == nil || !board.CanPlay() {
		return false
	}

	action, ok := board.director.Act()
	if !ok {
		return false
	}

	board.directorFrame++
	board.AddAnnotation(Annotation{
		Type: AnnotatePress,
		Cell: action.Cell(),
	})
	action.Apply()
	return true
}

func (board *Board) win() {
	board.state = Won
	board.endGame()
}

func (board *Board) startGame() {
	if board.director != nil {
		board.director.Start(board)
	}
}

func (board *Board) endGame() {
	if board.director != nil {
		board.director.End()
	}
	if board.onGameEnd != nil {
		board.onGameEnd(board)
	}
}

func (board *Board) changed() {
	if board.onChange != nil {
		board.onChange(board)
	}
}
