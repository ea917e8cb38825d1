package game

import "fmt"

type Tile struct {
	x, y  int
	idx   int
	value int

	opened, flagged bool
	detonated       bool
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%v, %v)", tile.x, tile.y)
}

func (tile *Tile) X() int {
	return tile.x
}

func (tile *Tile) Y() int {
	return tile.y
}

// Index is the row-major position of the tile: x + y*width
func (tile *Tile) Index() int {
	return tile.idx
}

// Value is MineValue for a mine, otherwise the number of adjacent mines.
// It is 0 for every tile until mines are generated.
func (tile *Tile) Value() int {
	return tile.value
}

func (tile *Tile) IsMine() bool {
	return tile.value == MineValue
}

func (tile *Tile) IsOpened() bool {
	return tile.opened
}

func (tile *Tile) IsFlagged() bool {
	return tile.flagged
}

// IsDetonated is true only for the mine whose opening lost the game
func (tile *Tile) IsDetonated() bool {
	return tile.detonated
}

func (tile *Tile) IsClickable() bool {
	return !tile.opened && !tile.flagged
}

func (tile *Tile) serialize() string {
	switch {
	case tile.IsMine():
		switch {
		case tile.detonated:
			return "*"
		case tile.flagged:
			return "F"
		case tile.opened:
			return "X"
		default:
			return "O"
		}
	case tile.flagged && tile.opened:
		return "x"
	case tile.flagged:
		return "f"
	case tile.opened:
		return "."
	default:
		return "#"
	}
}

// deserialize sets the mine and open/flag state of a tile from its snapshot
// character. Values of safe tiles are computed afterwards by the board.
func (tile *Tile) deserialize(c rune) bool {
	switch c {
	case '*':
		tile.value = MineValue
		tile.opened = true
		tile.detonated = true
	case 'F':
		tile.value = MineValue
		tile.flagged = true
	case 'X':
		tile.value = MineValue
		tile.opened = true
	case 'O':
		tile.value = MineValue
	case 'x':
		tile.flagged = true
		tile.opened = true
	case 'f':
		tile.flagged = true
	case '.':
		tile.opened = true
	case '#':
	default:
		return false
	}

	return true
}
