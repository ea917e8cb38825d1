package game

import (
	"github.com/they4kman/classicsweep/util/collections"
	"testing"
)

var pocket = collections.NewSet([2]int{7, 7}, [2]int{8, 7}, [2]int{7, 8})

func TestFloodOpensBlankRegion(t *testing.T) {
	engine, _ := restoreEngine(t, pocketLayout)
	engine.Reveal(0, 0)

	board := engine.Board()
	opened := make(collections.Set[[2]int])
	board.EachTile(func(tile *Tile) {
		if tile.IsOpened() {
			opened.Add([2]int{tile.X(), tile.Y()})
		}
	})

	want := make(collections.Set[[2]int])
	board.EachTile(func(tile *Tile) {
		pos := [2]int{tile.X(), tile.Y()}
		if !tile.IsMine() && !pocket.Contains(pos) {
			want.Add(pos)
		}
	})

	if missing := want.Difference(opened); len(missing) > 0 {
		t.Errorf("flood did not open %v", missing)
	}
	if extra := opened.Difference(want); len(extra) > 0 {
		t.Errorf("flood opened %v", extra)
	}

	if board.OpenedCount() != 72 || countOpenedSafe(board) != 72 {
		t.Errorf("OpenedCount() = %d, %d tiles open; want 72", board.OpenedCount(), countOpenedSafe(board))
	}
	if engine.Phase() != Running {
		t.Errorf("Phase() = %v; want running", engine.Phase())
	}

	values := map[[2]int]int{{5, 5}: 1, {6, 5}: 2, {7, 5}: 3, {5, 7}: 3, {0, 0}: 0}
	for pos, value := range values {
		if got := mustTile(t, engine, pos[0], pos[1]).Value(); got != value {
			t.Errorf("value at %v = %d; want %d", pos, got, value)
		}
	}
}

func TestFloodSkipsFlaggedTiles(t *testing.T) {
	engine, _ := restoreEngine(t, pocketLayout)
	engine.ToggleFlag(2, 2)
	engine.Reveal(0, 0)

	flagged := mustTile(t, engine, 2, 2)
	if flagged.IsOpened() || !flagged.IsFlagged() {
		t.Errorf("flagged tile opened=%v flagged=%v", flagged.IsOpened(), flagged.IsFlagged())
	}
	if !mustTile(t, engine, 3, 3).IsOpened() {
		t.Errorf("flood did not reach around the flag")
	}
	if got := engine.Board().OpenedCount(); got != 71 {
		t.Errorf("OpenedCount() = %d; want 71", got)
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	engine, _ := restoreEngine(t, pocketLayout)
	engine.Reveal(0, 0)

	before := engine.Snapshot().SerializedBoard
	count := engine.Board().OpenedCount()

	engine.Reveal(0, 0)
	engine.Reveal(3, 3)
	engine.Reveal(6, 5)

	if after := engine.Snapshot().SerializedBoard; after != before {
		t.Errorf("board changed on repeated reveal:\n%s\n\n%s", before, after)
	}
	if got := engine.Board().OpenedCount(); got != count {
		t.Errorf("OpenedCount() = %d after repeated reveal; want %d", got, count)
	}
}

func TestRevealNumberedTileDoesNotFlood(t *testing.T) {
	engine, _ := restoreEngine(t, pocketLayout)
	engine.Reveal(6, 5)

	if !mustTile(t, engine, 6, 5).IsOpened() {
		t.Fatalf("(6, 5) not opened")
	}
	if got := engine.Board().OpenedCount(); got != 1 {
		t.Errorf("OpenedCount() = %d; want 1", got)
	}
}

func TestFloodThenPocketWins(t *testing.T) {
	engine, _ := restoreEngine(t, pocketLayout)
	engine.Reveal(0, 0)
	engine.Reveal(7, 7)
	engine.Reveal(8, 7)

	if engine.Phase() != Running {
		t.Fatalf("Phase() = %v before the last tile; want running", engine.Phase())
	}
	if got := mustTile(t, engine, 7, 7).Value(); got != 6 {
		t.Errorf("value at (7, 7) = %d; want 6", got)
	}

	engine.Reveal(7, 8)
	if engine.Phase() != Won {
		t.Fatalf("Phase() = %v; want won", engine.Phase())
	}
}

// Every opened blank tile has all neighbours opened, and every opened tile
// is the start or touches an opened blank tile.
func TestFloodRegionIsClosed(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		engine := NewEngine(Config{Width: 30, Height: 16, NumMines: 60, Seed: seed})
		engine.Reveal(15, 8)
		board := engine.Board()
		start := board.TileAt(15, 8)

		board.EachTile(func(tile *Tile) {
			if !tile.IsOpened() {
				return
			}

			touchesBlank := false
			board.ForEachNeighbor(tile, func(neighbor *Tile) {
				if neighbor.IsOpened() && neighbor.Value() == 0 {
					touchesBlank = true
				}
				if tile.Value() == 0 && !neighbor.IsOpened() {
					t.Errorf("seed %d: blank %v has closed neighbour %v", seed, tile, neighbor)
				}
			})
			if tile != start && !touchesBlank {
				t.Errorf("seed %d: %v opened without a blank neighbour", seed, tile)
			}
		})

		if board.OpenedCount() != countOpenedSafe(board) {
			t.Errorf("seed %d: OpenedCount() = %d; %d tiles open", seed, board.OpenedCount(), countOpenedSafe(board))
		}
	}
}
