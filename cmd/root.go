package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/lightsout/cmd/options"
	"github.com/they4kman/lightsout/game"
	"github.com/they4kman/lightsout/logging"
	"github.com/they4kman/lightsout/window"
)

var gameConfig = game.NewGameConfig()

var (
	difficulty   = game.Medium
	boardSize    uint
	directorName = "none"
	snapshotPath string

	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "lightsout",
	Short: "Play manual or computer-driven Lights Out",
	Long: `lightsout is a Lights Out game which supports human- or
computer-driven playing. Pressing a cell flips it and its four
neighbours; turn every light off to win.

Run with no arguments to play in a window
	lightsout

Use the director flag to make the computer play for you
	lightsout --director optimal

Play in the terminal instead
	lightsout term --difficulty hard
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(logLevel, logJSON)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prepareGameConfig(cmd); err != nil {
			return err
		}

		pixelgl.Run(func() {
			window.Run(gameConfig)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// prepareGameConfig resolves the board, snapshot and director flags into
// gameConfig
func prepareGameConfig(cmd *cobra.Command) error {
	gameConfig.Size = difficulty.Size()
	if cmd.Flags().Changed("size") {
		if boardSize == 0 {
			return game.ErrInvalidSize
		}
		gameConfig.Size = boardSize
	}

	if snapshotPath != "" {
		snapshot, err := readSnapshot(snapshotPath)
		if err != nil {
			return err
		}
		gameConfig.Snapshot = snapshot
	}

	director, err := options.NewDirector(directorName)
	if err != nil {
		return err
	}
	gameConfig.Director = director
	return nil
}

func readSnapshot(path string) (*game.BoardSnapshot, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snapshot, err := game.LoadSnapshot(string(contents))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snapshot, nil
}

// addGameFlags registers the flags shared by every command that plays
func addGameFlags(flags *pflag.FlagSet) {
	flags.Var(options.NewDifficultyValue(game.Medium, &difficulty), "difficulty", `Board size preset.
easy: 3x3
medium: 5x5
hard: 7x7`)
	flags.UintVarP(&boardSize, "size", "s", 0, "Side length of the board, in cells (overrides --difficulty)")
	flags.UintVar(&gameConfig.ShuffleFactor, "shuffle-factor", game.DefaultShuffleFactor, "Shuffle presses per unit of side length")
	flags.Var(options.NewShuffleModeValue(game.ShufflePresses, &gameConfig.ShuffleMode), "shuffle", `What the shuffle does at each random cell.
presses: a full press, always solvable
toggles: flips that cell only, may be unsolvable`)
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Seed for the first board's shuffle (0 picks one from the clock)")
	flags.StringVar(&snapshotPath, "snapshot", "", "Load the first board from a snapshot file")
	flags.StringVarP(&directorName, "director", "d", "none", "Make the computer play: none, optimal or random")
	flags.StringVar(&gameConfig.SavedSnapshotsDir, "save-snapshots", "", "Directory to save a snapshot of every solved board to")
}

func init() {
	addGameFlags(rootCmd.Flags())
	rootCmd.Flags().DurationVar(&gameConfig.DirectorInterval, "director-interval", gameConfig.DirectorInterval, "Delay between director moves")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log as JSON")
}
