package cmd

import (
	"fmt"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/classicsweep/game"
	"github.com/they4kman/classicsweep/ui"
	"os"
)

var gameConfig = game.NewConfig()
var difficulty = Beginner
var layoutPath string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "classicsweep",
	Short: "Play classic Minesweeper",
	Long: `classicsweep is the classic Minesweeper game.

Run with no arguments to play a beginner board
	classicsweep

Pick a preset, or size the board yourself
	classicsweep --difficulty expert
	classicsweep -w 20 -h 12 -m 30

Left click opens a tile, right click flags it, middle click on a number
opens its neighbours once enough flags surround it. Enter starts over.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		game.Log.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config := ui.Config{Game: resolveGameConfig(cmd, gameConfig, difficulty)}

		if layoutPath != "" {
			snapshot, err := readSnapshot(layoutPath)
			if err != nil {
				return err
			}
			config.Snapshot = snapshot
		}

		var err error
		pixelgl.Run(func() {
			err = ui.Run(config)
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveGameConfig applies the difficulty preset to every board dimension
// not set explicitly on the command line
func resolveGameConfig(cmd *cobra.Command, config game.Config, difficulty Difficulty) game.Config {
	preset := difficultyPresets[difficulty]
	flags := cmd.Flags()

	if !flags.Changed("width") {
		config.Width = preset.Width
	}
	if !flags.Changed("height") {
		config.Height = preset.Height
	}
	if !flags.Changed("mines") {
		config.NumMines = preset.NumMines
	}
	return config
}

func readSnapshot(path string) (*game.BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	if _, err := snapshot.CreateBoard(); err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return snapshot, nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level (trace, debug, info, warning, error)")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in tiles (9-30)")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in tiles (9-24)")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().Var(&difficulty, "difficulty", `Board preset, overridden by --width, --height and --mines.
beginner: 9x9, 10 mines
intermediate: 16x16, 40 mines
expert: 30x16, 99 mines`)
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "YAML board snapshot to play instead of a random board")
}
