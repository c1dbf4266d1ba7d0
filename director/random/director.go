package random

import (
	"github.com/they4kman/lightsout/game"
)

// Director presses cells at random, drawing from the board's own rand source
type Director struct {
	game.BaseDirector

	board *game.Board
}

func (director *Director) Start(board *game.Board) {
	director.board = board
}

func (director *Director) Act() (game.CellAction, bool) {
	if director.board == nil || !director.board.CanPlay() {
		return game.CellAction{}, false
	}

	n := int(director.board.Size())
	row := director.board.Rand().Intn(n)
	col := director.board.Rand().Intn(n)
	return director.board.CellAt(row, col).Press(), true
}
