package game

import (
	"github.com/sirupsen/logrus"
	"math/rand"
)

type Board struct {
	width, height int // in number of tiles
	numMines      int
	tiles         []Tile

	minesPlaced    bool
	minesRemaining int
	openedCount    int
}

// NewBoard allocates a board with every tile closed and no mines placed.
// Each dimension is clamped to its valid range, then the mine count is
// clamped to [MinMines, MaxMines(width, height)].
func NewBoard(width, height, numMines int) *Board {
	width = clamp(width, MinWidth, MaxWidth)
	height = clamp(height, MinHeight, MaxHeight)
	numMines = clamp(numMines, MinMines, MaxMines(width, height))

	return newBoard(width, height, numMines)
}

func newBoard(width, height, numMines int) *Board {
	board := &Board{
		width:          width,
		height:         height,
		numMines:       numMines,
		tiles:          make([]Tile, width*height),
		minesRemaining: numMines,
	}

	for idx := range board.tiles {
		tile := &board.tiles[idx]
		tile.idx = idx
		tile.x, tile.y = idx%width, idx/width
	}

	return board
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumTiles() int {
	return board.width * board.height
}

// NumSafeTiles is the number of tiles that must be opened to win
func (board *Board) NumSafeTiles() int {
	return board.NumTiles() - board.numMines
}

// MinesRemaining is the mine count minus the flags placed. It goes negative
// when more tiles are flagged than there are mines.
func (board *Board) MinesRemaining() int {
	return board.minesRemaining
}

// OpenedCount is the number of safe tiles opened so far
func (board *Board) OpenedCount() int {
	return board.openedCount
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

func (board *Board) TileAt(x, y int) *Tile {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.tiles[x+y*board.width]
	}
	return nil
}

func (board *Board) TileIndex(idx int) *Tile {
	if idx >= 0 && idx < len(board.tiles) {
		return &board.tiles[idx]
	}
	return nil
}

// EachTile calls fn on every tile in row-major order
func (board *Board) EachTile(fn func(*Tile)) {
	for idx := range board.tiles {
		fn(&board.tiles[idx])
	}
}

// ForEachNeighbor calls fn on each in-bounds tile of the 3x3 box around
// tile, excluding tile itself, scanning rows top to bottom and left to right.
func (board *Board) ForEachNeighbor(tile *Tile, fn func(*Tile)) {
	for y := tile.y - 1; y <= tile.y+1; y++ {
		for x := tile.x - 1; x <= tile.x+1; x++ {
			if x == tile.x && y == tile.y {
				continue
			}
			if neighbor := board.TileAt(x, y); neighbor != nil {
				fn(neighbor)
			}
		}
	}
}

func (board *Board) countNeighbors(tile *Tile, match func(*Tile) bool) int {
	count := 0
	board.ForEachNeighbor(tile, func(neighbor *Tile) {
		if match(neighbor) {
			count++
		}
	})
	return count
}

// GenerateMines places exactly NumMines mines on distinct tiles chosen
// uniformly from every tile except (excludeX, excludeY), then sets the value
// of every safe tile to its number of adjacent mines. Boards whose mines are
// already placed are left untouched.
func (board *Board) GenerateMines(excludeX, excludeY int, rng *rand.Rand) {
	if board.minesPlaced {
		return
	}

	excluded := excludeX + excludeY*board.width
	numTiles := board.NumTiles()

	// Rejection sampling always terminates: numMines < numTiles-1
	for placed := 0; placed < board.numMines; {
		idx := rng.Intn(numTiles)
		if idx == excluded || board.tiles[idx].IsMine() {
			continue
		}
		board.tiles[idx].value = MineValue
		placed++
	}

	board.computeValues()
	board.minesPlaced = true

	Log.WithFields(logrus.Fields{
		"width":   board.width,
		"height":  board.height,
		"mines":   board.numMines,
		"exclude": board.TileAt(excludeX, excludeY),
	}).Debug("generated mines")
}

func (board *Board) computeValues() {
	board.EachTile(func(tile *Tile) {
		if !tile.IsMine() {
			tile.value = board.countNeighbors(tile, (*Tile).IsMine)
		}
	})
}

// open marks a clickable tile opened. Only safe tiles count towards
// OpenedCount.
func (board *Board) open(tile *Tile) {
	tile.opened = true
	if !tile.IsMine() {
		board.openedCount++
	}
}

func (board *Board) setFlagged(tile *Tile, isFlagged bool) {
	if tile.flagged == isFlagged {
		return
	}
	tile.flagged = isFlagged

	if isFlagged {
		board.minesRemaining--
	} else {
		board.minesRemaining++
	}
}

func (board *Board) allSafeTilesOpened() bool {
	return board.openedCount == board.NumSafeTiles()
}
