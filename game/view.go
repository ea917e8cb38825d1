package game

import "time"

// TileView is what a renderer needs to draw a single tile
type TileView struct {
	X, Y      int
	Value     int
	Opened    bool
	Flagged   bool
	Detonated bool
	Pressed   bool
}

// View is a copy of the engine state a renderer consumes. It does not
// change when the engine does.
type View struct {
	Width, Height  int
	Tiles          []TileView // row-major
	MinesRemaining int
	Elapsed        time.Duration
	Phase          Phase
	Face           Face
}

func (view View) TileAt(x, y int) (TileView, bool) {
	if x < 0 || y < 0 || x >= view.Width || y >= view.Height {
		return TileView{}, false
	}
	return view.Tiles[x+y*view.Width], true
}

func (engine *Engine) View() View {
	board := engine.board
	view := View{
		Width:          board.width,
		Height:         board.height,
		Tiles:          make([]TileView, 0, board.NumTiles()),
		MinesRemaining: board.minesRemaining,
		Elapsed:        engine.Elapsed(),
		Phase:          engine.phase,
		Face:           engine.Face(),
	}

	board.EachTile(func(tile *Tile) {
		view.Tiles = append(view.Tiles, TileView{
			X:         tile.x,
			Y:         tile.y,
			Value:     tile.value,
			Opened:    tile.opened,
			Flagged:   tile.flagged,
			Detonated: tile.detonated,
			Pressed:   engine.Pressed(tile),
		})
	})

	return view
}
