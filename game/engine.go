package game

import (
	"github.com/sirupsen/logrus"
	"math/rand"
	"time"
)

type Config struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement. 0 picks a time-based seed.
	Seed int64

	// Clock returns the current time; nil means time.Now
	Clock func() time.Time

	Observers []Observer
}

func NewConfig() Config {
	return Config{
		Width:    9,
		Height:   9,
		NumMines: 10,
	}
}

// Engine owns a board and the session around it: phase, timer, pointer
// focus and button state. It is the only thing that mutates the board.
//
// An Engine is not safe for concurrent use. Use a Loop to share one between
// goroutines.
type Engine struct {
	board *Board
	phase Phase

	seed  int64
	rand  *rand.Rand
	clock func() time.Time

	startedAt, stoppedAt time.Time

	focus                      *Tile
	primaryDown, auxiliaryDown bool
	chordOrigin                *Tile

	observers []Observer
}

func NewEngine(config Config) *Engine {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := config.Clock
	if clock == nil {
		clock = time.Now
	}

	engine := &Engine{
		seed:      seed,
		rand:      rand.New(rand.NewSource(seed)),
		clock:     clock,
		observers: append([]Observer(nil), config.Observers...),
	}
	engine.NewGame(config.Width, config.Height, config.NumMines)

	return engine
}

// NewGame discards the current board and starts over with a fresh one.
// Parameters are clamped, never rejected. Mines are placed on the first
// reveal.
func (engine *Engine) NewGame(width, height, numMines int) {
	engine.reset(NewBoard(width, height, numMines), Idle)

	Log.WithFields(logrus.Fields{
		"width":  engine.board.width,
		"height": engine.board.height,
		"mines":  engine.board.numMines,
	}).Debug("new game")

	engine.changed()
}

func (engine *Engine) reset(board *Board, phase Phase) {
	engine.board = board
	engine.phase = phase
	engine.startedAt = time.Time{}
	engine.stoppedAt = time.Time{}
	engine.focus = nil
	engine.primaryDown = false
	engine.auxiliaryDown = false
	engine.chordOrigin = nil
}

// Restore replaces the current game with the board described by snapshot.
// The phase follows from the layout: Lost if a mine is detonated, Won if
// every safe tile is open, Running if anything is open and Idle otherwise.
func (engine *Engine) Restore(snapshot *BoardSnapshot) error {
	board, err := snapshot.CreateBoard()
	if err != nil {
		return err
	}

	phase := Idle
	board.EachTile(func(tile *Tile) {
		switch {
		case tile.detonated:
			phase = Lost
		case tile.opened && phase == Idle:
			phase = Running
		}
	})
	if phase != Lost && board.allSafeTilesOpened() {
		phase = Won
	}

	engine.reset(board, phase)
	if phase != Idle {
		engine.startedAt = engine.clock()
	}
	if phase.IsOver() {
		engine.stoppedAt = engine.startedAt
	}

	Log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
		"phase":  phase,
	}).Debug("restored game")

	engine.changed()
	return nil
}

func (engine *Engine) AddObserver(observer Observer) {
	engine.observers = append(engine.observers, observer)
}

func (engine *Engine) Board() *Board {
	return engine.board
}

func (engine *Engine) Phase() Phase {
	return engine.phase
}

func (engine *Engine) Seed() int64 {
	return engine.seed
}

// Focus is the tile under the pointer, or nil
func (engine *Engine) Focus() *Tile {
	return engine.focus
}

// Elapsed is zero before the first reveal, grows while the game runs and
// stays fixed once it is won or lost.
func (engine *Engine) Elapsed() time.Duration {
	switch {
	case engine.startedAt.IsZero():
		return 0
	case !engine.stoppedAt.IsZero():
		return engine.stoppedAt.Sub(engine.startedAt)
	default:
		return engine.clock().Sub(engine.startedAt)
	}
}

func (engine *Engine) Face() Face {
	switch {
	case engine.phase == Lost:
		return Dead
	case engine.phase == Won:
		return Cool
	case engine.focus != nil && (engine.primaryDown || engine.auxiliaryDown):
		return Surprised
	default:
		return Smile
	}
}

// Pressed reports whether tile should be drawn pushed in: the focused tile
// while the primary button is held, or the focused tile and its neighbours
// while the auxiliary button is held. Only clickable tiles are pressed.
func (engine *Engine) Pressed(tile *Tile) bool {
	focus := engine.focus
	if focus == nil || engine.phase.IsOver() || !tile.IsClickable() {
		return false
	}

	if tile == focus {
		return engine.primaryDown || engine.auxiliaryDown
	}
	if engine.auxiliaryDown {
		dx, dy := tile.x-focus.x, tile.y-focus.y
		return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
	}
	return false
}

// PointerEnter moves focus to the tile at (x, y). Coordinates off the board
// clear focus. Moving off the tile a chord was started on cancels the chord.
func (engine *Engine) PointerEnter(x, y int) {
	engine.focus = engine.board.TileAt(x, y)
	if engine.focus != engine.chordOrigin {
		engine.chordOrigin = nil
	}
	engine.changed()
}

func (engine *Engine) PointerLeave() {
	engine.focus = nil
	engine.chordOrigin = nil
	engine.changed()
}

func (engine *Engine) PrimaryPress() {
	engine.primaryDown = true
	engine.changed()
}

func (engine *Engine) PrimaryRelease() {
	engine.primaryDown = false
	if engine.focus != nil {
		engine.reveal(engine.focus)
	}
	engine.changed()
}

func (engine *Engine) SecondaryPress() {
	if engine.focus != nil {
		engine.toggleFlag(engine.focus)
	}
	engine.changed()
}

func (engine *Engine) AuxiliaryPress() {
	engine.auxiliaryDown = true
	engine.chordOrigin = engine.focus
	engine.changed()
}

// AuxiliaryRelease chords the focused tile, unless the pointer has left
// the tile it was over when the button went down.
func (engine *Engine) AuxiliaryRelease() {
	origin := engine.chordOrigin
	engine.auxiliaryDown = false
	engine.chordOrigin = nil

	if origin != nil && engine.focus == origin {
		engine.chord(engine.focus)
	}
	engine.changed()
}

// Tick notifies observers of the elapsed time. It does nothing unless the
// game is running.
func (engine *Engine) Tick() {
	if engine.phase != Running {
		return
	}

	elapsed := engine.Elapsed()
	for _, observer := range engine.observers {
		observer.Ticked(engine, elapsed)
	}
}

func (engine *Engine) Reveal(x, y int) {
	if tile := engine.board.TileAt(x, y); tile != nil {
		engine.reveal(tile)
		engine.changed()
	}
}

func (engine *Engine) ToggleFlag(x, y int) {
	if tile := engine.board.TileAt(x, y); tile != nil {
		engine.toggleFlag(tile)
		engine.changed()
	}
}

func (engine *Engine) Chord(x, y int) {
	if tile := engine.board.TileAt(x, y); tile != nil {
		engine.chord(tile)
		engine.changed()
	}
}

func (engine *Engine) reveal(tile *Tile) {
	if engine.phase.IsOver() || !tile.IsClickable() {
		return
	}

	if engine.phase == Idle {
		engine.start(tile)
	}
	engine.openTile(tile)
}

// start places the mines around the first revealed tile and starts the
// timer.
func (engine *Engine) start(first *Tile) {
	if !engine.board.minesPlaced {
		engine.board.GenerateMines(first.x, first.y, engine.rand)
	}
	engine.startedAt = engine.clock()
	engine.setPhase(Running)
}

func (engine *Engine) toggleFlag(tile *Tile) {
	if engine.phase.IsOver() || tile.opened {
		return
	}
	engine.board.setFlagged(tile, !tile.flagged)
}

// chord opens every closed, unflagged neighbour of an opened number tile
// whose flagged neighbours match its value.
func (engine *Engine) chord(tile *Tile) {
	if engine.phase != Running || !tile.opened || tile.value <= 0 {
		return
	}

	numFlags := engine.board.countNeighbors(tile, (*Tile).IsFlagged)
	if numFlags != tile.value {
		return
	}

	engine.board.ForEachNeighbor(tile, func(neighbor *Tile) {
		engine.openTile(neighbor)
	})
}

func (engine *Engine) checkWin() {
	board := engine.board
	if !board.allSafeTilesOpened() {
		return
	}

	engine.stopTimer()
	board.EachTile(func(tile *Tile) {
		if tile.IsMine() && !tile.flagged {
			tile.flagged = true
		}
	})
	board.minesRemaining = 0
	engine.setPhase(Won)
}

// lose reveals every unflagged mine and every wrongly flagged safe tile.
// Correctly flagged mines stay as they are.
func (engine *Engine) lose() {
	engine.stopTimer()
	engine.board.EachTile(func(tile *Tile) {
		if tile.IsMine() != tile.flagged {
			tile.opened = true
		}
	})
	engine.setPhase(Lost)
}

func (engine *Engine) stopTimer() {
	if !engine.startedAt.IsZero() && engine.stoppedAt.IsZero() {
		engine.stoppedAt = engine.clock()
	}
}

func (engine *Engine) setPhase(phase Phase) {
	if engine.phase == phase {
		return
	}

	fields := logrus.Fields{
		"from": engine.phase,
		"to":   phase,
	}
	engine.phase = phase

	if phase.IsOver() {
		fields["elapsed"] = engine.Elapsed()
		fields["opened"] = engine.board.openedCount
		Log.WithFields(fields).Info("game over")
	} else {
		Log.WithFields(fields).Debug("phase changed")
	}
}

func (engine *Engine) changed() {
	for _, observer := range engine.observers {
		observer.StateChanged(engine)
	}
}
