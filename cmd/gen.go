package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/they4kman/classicsweep/game"
)

var (
	genConfig  = game.NewConfig()
	genX, genY int
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a generated board as a YAML snapshot",
		Long: `Generate a board, open its first tile and print the result as a YAML
snapshot, which can be played later with --layout.

Examples:
  classicsweep gen --seed 42
  classicsweep gen -w 30 -h 16 -m 99 --x 15 --y 8 > expert.yaml`,
		RunE: runGen,
	}

	genCmd.Flags().Bool("help", false, "Help for this command")
	genCmd.Flags().IntVarP(&genConfig.Width, "width", "w", genConfig.Width, "Width of game board, in tiles (9-30)")
	genCmd.Flags().IntVarP(&genConfig.Height, "height", "h", genConfig.Height, "Height of game board, in tiles (9-24)")
	genCmd.Flags().IntVarP(&genConfig.NumMines, "mines", "m", genConfig.NumMines, "Number of mines to place in the game board")
	genCmd.Flags().Int64Var(&genConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	genCmd.Flags().IntVar(&genX, "x", 0, "Column of the first opened tile")
	genCmd.Flags().IntVar(&genY, "y", 0, "Row of the first opened tile")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	engine := game.NewEngine(genConfig)
	board := engine.Board()

	if board.TileAt(genX, genY) == nil {
		return fmt.Errorf("first tile (%d, %d) is outside the %dx%d board", genX, genY, board.Width(), board.Height())
	}
	engine.Reveal(genX, genY)

	_, err := fmt.Fprint(cmd.OutOrStdout(), engine.Snapshot().Serialize())
	return err
}
