package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/classicsweep/util/collections"
)

// Visitor is called once per tile reached by a flood. Returning true
// expands the flood into the tile's neighbours.
type Visitor func(*Tile) bool

// flood runs a breadth-first traversal from start. Each tile is queued at
// most once, so visit never sees the same tile twice.
func (board *Board) flood(start *Tile, visit Visitor) {
	var queue deque.Deque
	queued := make(collections.Set[int])

	enqueue := func(tile *Tile) {
		if queued.Contains(tile.idx) {
			return
		}
		queued.Add(tile.idx)
		queue.PushBack(tile.idx)
	}

	enqueue(start)
	for queue.Len() > 0 {
		tile := board.TileIndex(queue.PopFront().(int))
		if visit(tile) {
			board.ForEachNeighbor(tile, enqueue)
		}
	}
}

// openTile opens tile and, when it is blank, the whole blank region around
// it plus the numbered tiles bordering that region. Tiles that are already
// opened or flagged are skipped, as is everything once the game is over.
func (engine *Engine) openTile(start *Tile) {
	if !start.IsClickable() {
		return
	}

	engine.board.flood(start, func(tile *Tile) bool {
		if engine.phase.IsOver() || !tile.IsClickable() {
			return false
		}

		engine.board.open(tile)

		switch {
		case tile.IsMine():
			tile.detonated = true
			engine.lose()
			return false
		case tile.value > 0:
			engine.checkWin()
			return false
		default:
			engine.checkWin()
			return true
		}
	})
}
