package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/lightsout/logging"
)

type GameConfig struct {
	Size          uint
	ShuffleFactor uint
	ShuffleMode   ShuffleMode

	Seed int64

	// Snapshot to load the first board from
	Snapshot *BoardSnapshot

	Director Director
	// Delay between director moves while it plays on its own
	DirectorInterval time.Duration

	// Transparency of annotations when first displayed
	AnnotationBaseAlpha float64
	// Total time an annotation will be displayed
	AnnotationDuration time.Duration

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:                Medium.Size(),
		ShuffleFactor:       DefaultShuffleFactor,
		Director:            nil,
		Snapshot:            nil,
		DirectorInterval:    500 * time.Millisecond,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  400 * time.Millisecond,
	}
}

// CreateBoard builds the board described by the config: from the snapshot if
// one is set, shuffled from scratch otherwise.
func (config GameConfig) CreateBoard(onChange func(*Board)) (*Board, error) {
	boardConfig := BoardConfig{
		Size:          config.Size,
		ShuffleFactor: config.ShuffleFactor,
		ShuffleMode:   config.ShuffleMode,
		Seed:          config.Seed,
		Director:      config.Director,
		OnGameEnd:     config.onGameEnd,
		OnChange:      onChange,
	}

	var board *Board
	var err error
	if config.Snapshot == nil {
		board, err = NewBoard(boardConfig)
	} else {
		board, err = config.Snapshot.CreateBoard(boardConfig)
	}
	if err != nil {
		return nil, err
	}

	logging.Log.WithFields(logrus.Fields{
		"size":  board.Size(),
		"seed":  board.Seed(),
		"lit":   board.LitCount(),
		"moves": board.Moves(),
	}).Debug("board created")

	return board, nil
}

func (config GameConfig) onGameEnd(board *Board) {
	logging.Log.WithFields(logrus.Fields{
		"size":  board.Size(),
		"moves": board.Moves(),
	}).Info("board solved")

	if _, err := config.saveSnapshot(board, time.Now()); err != nil {
		logging.Log.WithError(err).Error("could not save snapshot")
	}
}

// saveSnapshot writes the board to SavedSnapshotsDir, if set, and returns the
// path written.
func (config GameConfig) saveSnapshot(board *Board, t time.Time) (string, error) {
	if config.SavedSnapshotsDir == "" {
		return "", nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0o755); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	path := filepath.Join(config.SavedSnapshotsDir, config.generateReplayFilename(board, t))
	if err := os.WriteFile(path, []byte(board.Snapshot().Serialize()), 0o644); err != nil {
		return "", err
	}

	logging.Log.WithField("path", path).Info("snapshot saved")
	return path, nil
}

func (config GameConfig) generateReplayFilename(board *Board, t time.Time) string {
	var stateStr string
	switch {
	case board.HasWon():
		stateStr = "win"
	default:
		stateStr = "other"
	}

	return fmt.Sprintf("%s_%dx%d_%s_%s.yaml",
		t.Format("20060102_150405"), board.size, board.size, stateStr, uuid.NewString()[:8])
}

// TakeDirty reports whether any cell changed since the last call, and clears
// the flags.
func (board *Board) TakeDirty() bool {
	dirty := false
	for row := range board.cells {
		for col := range board.cells[row] {
			cell := &board.cells[row][col]
			if cell.isDirty {
				dirty = true
				cell.isDirty = false
			}
		}
	}
	return dirty
}
