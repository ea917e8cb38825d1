package game

import (
	"testing"
	"time"
)

// Six mines around the bottom right corner. The three safe tiles they
// enclose can't be reached by a flood from outside.
const pocketLayout = `
#########
#########
#########
#########
#########
#########
######OOO
######O##
######O#O
`

// (4,4) is open and touches the two mines above it
const chordLayout = `
#########
#########
#########
###O#O###
####.####
#########
#########
#########
########O
`

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, time.March, 10, 12, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

type recordingObserver struct {
	changes int
	ticks   []time.Duration
}

func (observer *recordingObserver) StateChanged(*Engine) {
	observer.changes++
}

func (observer *recordingObserver) Ticked(_ *Engine, elapsed time.Duration) {
	observer.ticks = append(observer.ticks, elapsed)
}

func restoreEngine(t *testing.T, layout string) (*Engine, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	engine := NewEngine(Config{Seed: 1, Clock: clock.Now})
	if err := engine.Restore(&BoardSnapshot{SerializedBoard: layout}); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	return engine, clock
}

func mustTile(t *testing.T, engine *Engine, x, y int) *Tile {
	t.Helper()

	tile := engine.Board().TileAt(x, y)
	if tile == nil {
		t.Fatalf("no tile at (%d, %d)", x, y)
	}
	return tile
}

func countOpenedSafe(board *Board) int {
	count := 0
	board.EachTile(func(tile *Tile) {
		if tile.IsOpened() && !tile.IsMine() {
			count++
		}
	})
	return count
}
