package game

type CellState int
type BoardState int

const (
	Off CellState = iota
	On
)

const (
	Ongoing BoardState = iota
	Won
	Paused
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Number of shuffle presses per unit of board side length
const DefaultShuffleFactor = 5

// ShuffleMode selects what Randomize does at each random cell
type ShuffleMode int

const (
	// ShufflePresses applies a full cross press. The result is always solvable.
	ShufflePresses ShuffleMode = iota
	// ShuffleToggles flips the single cell only. Some results, e.g. a lone
	// lit corner on 5x5, have no solution.
	ShuffleToggles
)

var ShuffleModes = map[string]ShuffleMode{
	"presses": ShufflePresses,
	"toggles": ShuffleToggles,
}

func (mode ShuffleMode) String() string {
	for name, m := range ShuffleModes {
		if m == mode {
			return name
		}
	}
	return "unknown"
}

// Difficulty presets offered by the renderers. The engine itself accepts any
// positive size.
type Difficulty uint

const (
	Easy   Difficulty = 3
	Medium Difficulty = 5
	Hard   Difficulty = 7
)

var Difficulties = map[string]Difficulty{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

func (difficulty Difficulty) Size() uint {
	return uint(difficulty)
}

func (difficulty Difficulty) String() string {
	for name, d := range Difficulties {
		if d == difficulty {
			return name
		}
	}
	return "custom"
}
