package cmd

import (
	"github.com/spf13/cobra"

	"github.com/they4kman/lightsout/console"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play Lights Out in the terminal",
	Long: `Play Lights Out in the terminal.

Move with hjkl or the arrow keys, press the cell under the cursor with
Space or Enter. R starts a new board, 1/2/3 switch to easy/medium/hard,
Q quits. With a director, D lets it make one move and ? asks it for a hint.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prepareGameConfig(cmd); err != nil {
			return err
		}

		c, err := console.New(gameConfig)
		if err != nil {
			return err
		}
		return c.Run()
	},
}

func init() {
	addGameFlags(termCmd.Flags())
	rootCmd.AddCommand(termCmd)
}
