package ui

import (
	"github.com/faiface/pixel/pixelgl"
	"github.com/they4kman/classicsweep/game"
)

// input is one frame of raw window input, already translated to tile
// coordinates. It is read on the main thread and applied on the game loop.
type input struct {
	onBoard      bool
	tileX, tileY int
	onFace       bool

	primaryPressed, primaryReleased     bool
	secondaryPressed                    bool
	auxiliaryPressed, auxiliaryReleased bool
	restart                             bool
}

func readInput(win *pixelgl.Window, l layout) input {
	in := input{
		primaryPressed:    win.JustPressed(pixelgl.MouseButtonLeft),
		primaryReleased:   win.JustReleased(pixelgl.MouseButtonLeft),
		secondaryPressed:  win.JustPressed(pixelgl.MouseButtonRight),
		auxiliaryPressed:  win.JustPressed(pixelgl.MouseButtonMiddle),
		auxiliaryReleased: win.JustReleased(pixelgl.MouseButtonMiddle),
		restart:           win.JustPressed(pixelgl.KeyEnter),
	}

	if win.MouseInsideWindow() {
		pos := win.MousePosition()
		in.tileX, in.tileY, in.onBoard = l.screenToGrid(pos)
		in.onFace = l.faceRect().Contains(pos)
	}

	return in
}

func (in input) apply(engine *game.Engine) {
	if in.restart || (in.onFace && in.primaryReleased) {
		board := engine.Board()
		engine.NewGame(board.Width(), board.Height(), board.NumMines())
		return
	}

	focus := engine.Focus()
	switch {
	case in.onBoard && (focus == nil || focus.X() != in.tileX || focus.Y() != in.tileY):
		engine.PointerEnter(in.tileX, in.tileY)
	case !in.onBoard && focus != nil:
		engine.PointerLeave()
	}

	if in.primaryPressed {
		engine.PrimaryPress()
	}
	if in.primaryReleased {
		engine.PrimaryRelease()
	}
	if in.secondaryPressed {
		engine.SecondaryPress()
	}
	if in.auxiliaryPressed {
		engine.AuxiliaryPress()
	}
	if in.auxiliaryReleased {
		engine.AuxiliaryRelease()
	}
}
