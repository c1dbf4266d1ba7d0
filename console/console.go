package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/they4kman/lightsout/game"
	"github.com/they4kman/lightsout/logging"
)

const (
	keyCtrlC = 3
	keyCtrlD = 4
	keyEsc   = 27
)

var difficultyKeys = map[byte]game.Difficulty{
	'1': game.Easy,
	'2': game.Medium,
	'3': game.Hard,
}

// Console plays boards in a terminal, one keypress at a time
type Console struct {
	config game.GameConfig
	board  *game.Board

	curRow, curCol int
	hint           *game.Cell
	message        string
}

func New(config game.GameConfig) (*Console, error) {
	console := &Console{config: config}
	if err := console.reset(); err != nil {
		return nil, err
	}
	return console, nil
}

func (console *Console) Board() *game.Board {
	return console.board
}

// Cursor returns the cell under the cursor
func (console *Console) Cursor() *game.Cell {
	return console.board.CellAt(console.curRow, console.curCol)
}

// reset starts a new board. The configured seed and snapshot only apply to
// the first one.
func (console *Console) reset() error {
	board, err := console.config.CreateBoard(nil)
	if err != nil {
		return err
	}
	console.config.Snapshot = nil
	console.config.Seed = 0

	console.board = board
	console.hint = nil
	console.message = ""

	last := int(board.Size()) - 1
	console.curRow, console.curCol = min(console.curRow, last), min(console.curCol, last)
	return nil
}

func (console *Console) moveCursor(dRow, dCol int) {
	last := int(console.board.Size()) - 1
	console.curRow = max(0, min(last, console.curRow+dRow))
	console.curCol = max(0, min(last, console.curCol+dCol))
}

// HandleKey applies one read from the terminal. Returns false to quit.
func (console *Console) HandleKey(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	if b[0] == keyCtrlC || b[0] == keyCtrlD {
		return false
	}

	// Arrow keys: ESC [ A/B/C/D
	if len(b) >= 3 && b[0] == keyEsc && b[1] == '[' {
		switch b[2] {
		case 'A':
			console.moveCursor(-1, 0)
		case 'B':
			console.moveCursor(1, 0)
		case 'C':
			console.moveCursor(0, 1)
		case 'D':
			console.moveCursor(0, -1)
		}
		return true
	}
	if len(b) != 1 {
		return true
	}

	console.message = ""
	key := b[0]

	if difficulty, ok := difficultyKeys[key]; ok {
		console.config.Size = difficulty.Size()
		console.resetOrReport()
		return true
	}

	switch key {
	case 'q', 'Q':
		return false

	case 'h':
		console.moveCursor(0, -1)
	case 'j':
		console.moveCursor(1, 0)
	case 'k':
		console.moveCursor(-1, 0)
	case 'l':
		console.moveCursor(0, 1)

	case ' ', '\r', '\n':
		if console.board.CanPlay() {
			console.hint = nil
			console.board.ApplyMove(console.curRow, console.curCol)
		}

	case 'r', 'R':
		console.resetOrReport()

	case 'd', 'D':
		console.hint = nil
		if console.board.HasDirector() && !console.board.RequestDirectorAct() && console.board.CanPlay() {
			console.message = "the director has no move to make"
		}

	case '?':
		if cell, ok := console.board.RequestHint(); ok {
			console.hint = cell
			console.curRow, console.curCol = int(cell.Row()), int(cell.Col())
		} else if console.board.CanPlay() {
			console.message = "no hint available"
		}
	}

	return true
}

func (console *Console) resetOrReport() {
	if err := console.reset(); err != nil {
		logging.Log.WithError(err).Error("could not create board")
		console.message = err.Error()
	}
}

func (console *Console) Render() string {
	return Render(console.board, View{
		Cursor:  console.Cursor(),
		Hint:    console.hint,
		Message: console.message,
	})
}

// Play reads keys from in and draws to out until the player quits or in is
// closed.
func (console *Console) Play(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, ansiHide+console.Render())
	defer fmt.Fprint(out, ansiShow+ansiReset+"\r\n")

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !console.HandleKey(buf[:n]) {
			return nil
		}
		fmt.Fprint(out, console.Render())
	}
}

// Run plays on the controlling terminal in raw mode. Log output is held back
// until the terminal is restored.
func (console *Console) Run() error {
	tty, err := openTerminal()
	if err != nil {
		return err
	}
	defer tty.Close()

	fd := int(tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("could not enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	return console.Play(tty, tty)
}

func openTerminal() (*os.File, error) {
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		return tty, nil
	}
	for n := 0; n <= 2; n++ {
		f, err := os.OpenFile(fmt.Sprintf("/proc/self/fd/%d", n), os.O_RDWR, 0)
		if err != nil {
			continue
		}
		if term.IsTerminal(int(f.Fd())) {
			return f, nil
		}
		f.Close()
	}
	return nil, fmt.Errorf("no interactive terminal found; run lightsout term from a terminal")
}
