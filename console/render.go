package console

import (
	"fmt"
	"strings"

	"github.com/they4kman/lightsout/game"
)

const (
	ansiClear    = "\033[2J\033[H"
	ansiHide     = "\033[?25l"
	ansiShow     = "\033[?25h"
	ansiReset    = "\033[0m"
	ansiBold     = "\033[1m"
	ansiGreen    = "\033[32m"
	ansiYellow   = "\033[33m"
	ansiGray     = "\033[90m"
	ansiYellowBG = "\033[43;30m"
	ansiBlueBG   = "\033[44;37m"
	ansiReverse  = "\033[7m"
)

const (
	litSymbol = " ■ "
	offSymbol = " □ "
)

// View is everything drawn besides the board itself
type View struct {
	Cursor  *game.Cell
	Hint    *game.Cell
	Message string
}

func borderLine(l, mid, r, cell string, n uint) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = cell
	}
	return l + strings.Join(parts, mid) + r + "\r\n"
}

func cellString(cell *game.Cell, view View) string {
	sym := offSymbol
	if cell.IsLit() {
		sym = litSymbol
	}

	switch {
	case cell == view.Cursor && cell.IsLit():
		return ansiYellowBG + sym + ansiReset
	case cell == view.Cursor:
		return ansiReverse + sym + ansiReset
	case cell == view.Hint:
		return ansiBlueBG + sym + ansiReset
	case cell.IsLit():
		return ansiYellow + sym + ansiReset
	default:
		return ansiGray + sym + ansiReset
	}
}

// Render draws the whole screen for board. Lines end in \r\n, as the terminal
// is in raw mode.
func Render(board *game.Board, view View) string {
	var sb strings.Builder
	sb.WriteString(ansiClear + "\r\n")

	size := board.Size()
	sb.WriteString(ansiBold + "  LIGHTS OUT" + ansiReset)
	fmt.Fprintf(&sb, "   %dx%d  Moves: %d", size, size, board.Moves())
	if board.IsPaused() {
		sb.WriteString("  (paused)")
	}
	sb.WriteString("\r\n\r\n")

	sb.WriteString("  " + borderLine("┌", "┬", "┐", "───", size))
	for row := 0; row < int(size); row++ {
		if row > 0 {
			sb.WriteString("  " + borderLine("├", "┼", "┤", "───", size))
		}
		sb.WriteString("  │")
		for col := 0; col < int(size); col++ {
			sb.WriteString(cellString(board.CellAt(row, col), view))
			sb.WriteString("│")
		}
		sb.WriteString("\r\n")
	}
	sb.WriteString("  " + borderLine("└", "┴", "┘", "───", size))
	sb.WriteString("\r\n")

	if board.HasWon() {
		fmt.Fprintf(&sb, "%s%s  Solved in %d moves!%s\r\n", ansiBold, ansiGreen, board.Moves(), ansiReset)
		sb.WriteString("\r\n  [R] new board   [1/2/3] difficulty   [Q] quit\r\n")
	} else {
		sb.WriteString("  hjkl / arrows move   Space/Enter press   R new board   1/2/3 difficulty   Q quit\r\n")
		if board.HasDirector() {
			sb.WriteString("  D director move   ? hint\r\n")
		}
		sb.WriteString("\r\n  " + ansiYellow + "■" + ansiReset + " lit   " +
			ansiGray + "□" + ansiReset + " off\r\n")
	}

	if view.Message != "" {
		sb.WriteString("\r\n  " + view.Message + "\r\n")
	}

	return sb.String()
}
