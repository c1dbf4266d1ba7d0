package optimal

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/lightsout/game"
	"github.com/they4kman/lightsout/logging"
	"github.com/they4kman/lightsout/solver"
	"github.com/they4kman/lightsout/util/collections"
)

// Director plays a fewest-presses solution of the board it is given
type Director struct {
	board *game.Board
	plan  collections.Set[*game.Cell]
}

func (director *Director) Start(board *game.Board) {
	director.board = board
	director.plan = make(collections.Set[*game.Cell])

	positions, err := solver.Presses(board.Grid())
	if err != nil {
		logging.Log.WithError(err).Warn("director cannot solve this board")
		director.plan = nil
		return
	}

	for _, position := range positions {
		director.plan.Add(board.CellAt(position.Row, position.Col))
	}

	logging.Log.WithFields(logrus.Fields{
		"size":    board.Size(),
		"presses": len(director.plan),
	}).Debug("director planned solution")
}

// MoveApplied keeps the plan a solution of the current board: pressing a
// planned cell completes it, and any other press has to be undone by pressing
// the same cell again.
func (director *Director) MoveApplied(cell *game.Cell) {
	if director.plan != nil {
		director.plan.Toggle(cell)
	}
}

// Act returns the planned press with the lowest cell index
func (director *Director) Act() (game.CellAction, bool) {
	var next *game.Cell
	for cell := range director.plan {
		if next == nil || cell.Index() < next.Index() {
			next = cell
		}
	}

	if next == nil {
		return game.CellAction{}, false
	}
	return next.Press(), true
}

// Remaining is the number of presses left in the plan
func (director *Director) Remaining() int {
	return len(director.plan)
}

func (director *Director) End() {
	director.plan = nil
}
