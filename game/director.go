package game

type Director interface {
	// Start is called whenever the board is shuffled or loaded
	Start(*Board)

	// MoveApplied is called after every move on the board, whoever made it
	MoveApplied(*Cell)

	// Act returns the next move to make, or false if the director has none
	Act() (CellAction, bool)

	// End is called once the board is won
	End()
}

// BaseDirector provides no-op hooks for directors that don't need them
type BaseDirector struct{}

func (BaseDirector) MoveApplied(*Cell) {}
func (BaseDirector) End()              {}

type CellAction struct {
	cell *Cell
}

func (action CellAction) Cell() *Cell {
	return action.cell
}

func (action CellAction) String() string {
	return "Press" + action.cell.String()
}

// Apply makes the move on the cell's board and returns the new move count
func (action CellAction) Apply() uint {
	return action.cell.board.ApplyMove(int(action.cell.row), int(action.cell.col))
}

// RequestHint asks the director for its next move without applying it, and
// annotates the cell it would press.
func (board *Board) RequestHint() (*Cell, bool) {
	if board.director == nil || !board.CanPlay() {
		return nil, false
	}

	action, ok := board.director.Act()
	if !ok {
		return nil, false
	}

	board.AddAnnotation(Annotation{
		Type: AnnotateHint,
		Cell: action.Cell(),
	})
	return action.Cell(), true
}
