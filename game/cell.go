package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	row, col uint
	idx      uint

	isLit   bool
	isDirty bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() uint {
	return cell.row
}

func (cell *Cell) Col() uint {
	return cell.col
}

func (cell *Cell) Index() uint {
	return cell.idx
}

func (cell *Cell) IsLit() bool {
	return cell.isLit
}

func (cell *Cell) State() CellState {
	if cell.isLit {
		return On
	}
	return Off
}

// SelfNeighbors yields the cell itself, then the neighbours a press on it flips
func (cell *Cell) SelfNeighbors() <-chan *Cell {
	out := make(chan *Cell)
	go func() {
		out <- cell
		cell.SendNeighbors(out)
		close(out)
	}()
	return out
}

func (cell *Cell) Neighbors() <-chan *Cell {
	out := make(chan *Cell)
	go func() {
		cell.SendNeighbors(out)
		close(out)
	}()
	return out
}

// SendNeighbors sends the axis-aligned neighbours lying on the board
func (cell *Cell) SendNeighbors(out chan<- *Cell) {
	board := cell.board

	if cell.row >= 1 {
		out <- board.CellAt(int(cell.row)-1, int(cell.col))
	}
	if cell.row < board.size-1 {
		out <- board.CellAt(int(cell.row)+1, int(cell.col))
	}
	if cell.col >= 1 {
		out <- board.CellAt(int(cell.row), int(cell.col)-1)
	}
	if cell.col < board.size-1 {
		out <- board.CellAt(int(cell.row), int(cell.col)+1)
	}
}

func (cell *Cell) Press() CellAction {
	return CellAction{
		cell: cell,
	}
}

func (cell *Cell) toggle() {
	cell.isLit = !cell.isLit
	cell.isDirty = true
}
