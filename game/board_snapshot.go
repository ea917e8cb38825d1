package game

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"strings"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// BoardSnapshot describes a board one character per tile, one row per line.
// Mines are '*' when detonated, 'F' flagged, 'X' opened and 'O' closed.
// Safe tiles are 'f' flagged, '.' opened and '#' closed.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func (snapshot *BoardSnapshot) rows() []string {
	lines := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

// CreateBoard builds a board with mines already placed and tile values
// computed. Unlike NewBoard, out-of-range layouts are rejected rather than
// clamped.
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := snapshot.rows()

	height := len(rows)
	if height == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}
	width := len(rows[0])
	if width < MinWidth || width > MaxWidth || height < MinHeight || height > MaxHeight {
		return nil, fmt.Errorf("%w: %dx%d board is out of range", ErrInvalidSnapshot, width, height)
	}

	board := newBoard(width, height, 0)
	numDetonated := 0

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidSnapshot, y, len(row), width)
		}

		for x, c := range row {
			tile := board.TileAt(x, y)
			if !tile.deserialize(c) {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d, %d)", ErrInvalidSnapshot, c, x, y)
			}

			if tile.IsMine() {
				board.numMines++
			}
			if tile.detonated {
				numDetonated++
			}
		}
	}

	if board.numMines < MinMines || board.numMines > MaxMines(width, height) {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalidSnapshot, board.numMines, width, height)
	}
	if numDetonated > 1 {
		return nil, fmt.Errorf("%w: %d detonated mines", ErrInvalidSnapshot, numDetonated)
	}

	board.computeValues()
	board.minesPlaced = true
	board.minesRemaining = board.numMines

	board.EachTile(func(tile *Tile) {
		if tile.flagged {
			board.minesRemaining--
		}
		if tile.opened && !tile.IsMine() {
			board.openedCount++
		}
	})

	return board, nil
}

func (board *Board) serialize() string {
	var builder strings.Builder
	for y := 0; y < board.height; y++ {
		if y > 0 {
			builder.WriteString("\n")
		}
		for x := 0; x < board.width; x++ {
			builder.WriteString(board.TileAt(x, y).serialize())
		}
	}
	return builder.String()
}

func (engine *Engine) Snapshot() *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            engine.seed,
		SerializedBoard: engine.board.serialize(),
	}
}
