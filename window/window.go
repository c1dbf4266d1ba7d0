package window

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/lightsout/game"
	"github.com/they4kman/lightsout/logging"
)

const (
	cellWidth      = 64
	cellPadding    = 2
	headerHeight   = 50
	minWindowWidth = 320
)

var cellColors = map[game.CellState]color.RGBA{
	game.Off: colornames.Dimgray,
	game.On:  colornames.Gold,
}

var difficultyKeys = map[pixelgl.Button]game.Difficulty{
	pixelgl.Key1: game.Easy,
	pixelgl.Key2: game.Medium,
	pixelgl.Key3: game.Hard,
}

func windowBounds(size uint) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(size*cellWidth), minWindowWidth),
		float64(size*cellWidth+headerHeight),
	)
}

// Run opens a window and plays boards built from config until it is closed.
// Must be called from pixelgl.Run.
func Run(config game.GameConfig) {
	cfg := pixelgl.WindowConfig{
		Title:  "lightsout",
		Bounds: windowBounds(config.Size),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		logging.Log.WithError(err).Fatal("could not open window")
	}

	var boardTopLeft pixel.Vec

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	var statusText *text.Text
	var hoveredCell *game.Cell

	cellsImd := imdraw.New(nil)

	var board *game.Board
	_resetBoard := func(paused bool) {
		newBoard, err := config.CreateBoard(nil)
		if err != nil {
			logging.Log.WithError(err).Error("could not create board")
			return
		}
		config.Snapshot = nil
		config.Seed = 0
		board = newBoard
		if paused {
			board.TogglePaused()
		}

		win.SetBounds(windowBounds(board.Size()))

		topLeft := win.Bounds().Vertices()[1]
		boardTopLeft = topLeft.Sub(pixel.V(0, headerHeight))

		statusText = text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
	}
	resetBoard := func() {
		_resetBoard(false)
	}
	resetBoardPaused := func() {
		_resetBoard(true)
	}

	resetBoard()
	if board == nil {
		return
	}

	screenToCell := func(pos pixel.Vec) *game.Cell {
		if pos.Y > boardTopLeft.Y || pos.X < boardTopLeft.X {
			return nil
		}
		col := int((pos.X - boardTopLeft.X) / cellWidth)
		row := int((boardTopLeft.Y - pos.Y) / cellWidth)
		return board.CellAt(row, col)
	}

	cellRect := func(cell *game.Cell) (pixel.Vec, pixel.Vec) {
		start := boardTopLeft.Add(pixel.V(
			float64(cellWidth*cell.Col()),
			-float64(cellWidth*(cell.Row()+1)),
		))
		return start, start.Add(pixel.V(cellWidth, cellWidth))
	}

	var (
		frames       = 0
		second       = time.Tick(time.Second)
		directorTick = time.Tick(config.DirectorInterval)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		statusText.Clear()
		statusText.Color = colornames.Black
		fmt.Fprintf(statusText, "Moves: %d", board.Moves())
		switch {
		case board.HasWon():
			statusText.Color = colornames.Green
			fmt.Fprintf(statusText, "   SOLVED! Enter for a new board")
		case board.IsPaused():
			fmt.Fprintf(statusText, "   paused")
		}
		statusText.Draw(win, pixel.IM)

		if board.TakeDirty() {
			cellsImd.Clear()
			for cell := range board.Cells() {
				start, end := cellRect(cell)
				cellsImd.Color = cellColors[cell.State()]
				cellsImd.Push(start.Add(pixel.V(cellPadding, cellPadding)), end.Sub(pixel.V(cellPadding, cellPadding)))
				cellsImd.Rectangle(0) // 0 = filled
			}
		}
		cellsImd.Draw(win)

		if win.MouseInsideWindow() {
			hoveredCell = screenToCell(win.MousePosition())
		} else {
			hoveredCell = nil
		}

		// Outline the cells a click would flip
		if hoveredCell != nil && board.CanPlay() {
			imd := imdraw.New(nil)
			imd.Color = colornames.White
			for cell := range hoveredCell.SelfNeighbors() {
				start, end := cellRect(cell)
				imd.Push(start.Add(pixel.V(cellPadding+1, cellPadding+1)), end.Sub(pixel.V(cellPadding+1, cellPadding+1)))
				imd.Rectangle(2)
			}
			imd.Draw(win)
		}

		if annotations := board.Annotations(time.Now(), config.AnnotationDuration); len(annotations) > 0 {
			imd := imdraw.New(nil)

			now := time.Now()
			for _, annotation := range annotations {
				start, end := cellRect(annotation.Cell)
				baseColor := pixel.Alpha(0)

				switch annotation.Type {
				case game.AnnotatePress:
					baseColor = pixel.RGB(1, 0, 0)
				case game.AnnotateHint:
					baseColor = pixel.RGB(0, 0, 1)
				}

				alpha := config.AnnotationBaseAlpha
				if !board.IsLatest(annotation) {
					progress := 1 - float64(annotation.Age(now))/float64(config.AnnotationDuration)
					alpha *= InOutCubic(math.Max(progress, 0))
				}

				imd.Color = baseColor.Mul(pixel.Alpha(alpha))
				imd.Push(start, end)
				imd.Rectangle(0)
			}

			imd.Draw(win)
		}

		changedDifficulty := false
		for key, difficulty := range difficultyKeys {
			if win.JustPressed(key) {
				config.Size = difficulty.Size()
				changedDifficulty = true
			}
		}
		if changedDifficulty {
			resetBoard()
			continue
		}

		if !board.CanPlay() {
			// Start a new game with Enter or R
			if win.JustPressed(pixelgl.KeyEnter) || win.JustPressed(pixelgl.KeyR) {
				resetBoard()
			}

			// Start a new, paused game with Space or Right Arrow
			if board.HasDirector() && (win.JustPressed(pixelgl.KeySpace) || win.JustPressed(pixelgl.KeyRight)) {
				resetBoardPaused()
			}

			continue
		}

		if win.JustPressed(pixelgl.KeyR) {
			resetBoard()
			continue
		}

		if board.HasDirector() {
			// Pause with Space
			if win.JustPressed(pixelgl.KeySpace) {
				board.TogglePaused()
			}

			// Perform single step while paused with Right Arrow
			if board.IsPaused() && (win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)) {
				board.RequestDirectorAct()
			}

			if win.JustPressed(pixelgl.KeyH) {
				board.RequestHint()
			}

			select {
			case <-directorTick:
				if !board.IsPaused() {
					board.RequestDirectorAct()
				}
			default:
			}
		}

		if hoveredCell != nil && win.JustPressed(pixelgl.MouseButtonLeft) {
			hoveredCell.Press().Apply()
		}
	}
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}
