package ui

import (
	"github.com/faiface/pixel"
	"math"
)

const (
	tileWidth      = 16
	headerHeight   = 50
	minWindowWidth = 200
	faceSize       = 26
)

// layout maps between window coordinates and board tiles. Pixel's origin is
// the bottom left corner; tile row 0 is drawn at the top of the board.
type layout struct {
	width, height int // in tiles
}

func (l layout) bounds() pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(l.width*tileWidth), minWindowWidth),
		float64(l.height*tileWidth+headerHeight),
	)
}

func (l layout) boardTop() float64 {
	return float64(l.height * tileWidth)
}

func (l layout) screenToGrid(pos pixel.Vec) (x, y int, ok bool) {
	if pos.X < 0 || pos.Y < 0 || pos.Y >= l.boardTop() {
		return 0, 0, false
	}

	x = int(pos.X) / tileWidth
	y = l.height - int(pos.Y)/tileWidth - 1
	if x >= l.width || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}

func (l layout) tileRect(x, y int) pixel.Rect {
	min := pixel.V(float64(x*tileWidth), float64((l.height-y-1)*tileWidth))
	return pixel.R(min.X, min.Y, min.X+tileWidth, min.Y+tileWidth)
}

func (l layout) faceRect() pixel.Rect {
	center := pixel.V(l.bounds().W()/2, l.boardTop()+headerHeight/2)
	half := pixel.V(faceSize/2, faceSize/2)
	return pixel.Rect{Min: center.Sub(half), Max: center.Add(half)}
}
