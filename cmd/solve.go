package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/lightsout/cmd/options"
	"github.com/they4kman/lightsout/logging"
	"github.com/they4kman/lightsout/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve SNAPSHOT",
	Short: "Print the fewest presses that turn off a saved board",
	Long: `Print the fewest presses that turn off the board in a snapshot file,
one "row col" pair per line, counted from 0.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := readSnapshot(args[0])
		if err != nil {
			return err
		}

		grid, err := snapshot.Grid()
		if err != nil {
			return err
		}

		presses, err := solver.Presses(grid)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		logging.Log.WithFields(logrus.Fields{
			"size":    len(grid),
			"presses": len(presses),
		}).Debug("board solved")

		return options.PrintPresses(cmd.OutOrStdout(), presses)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
