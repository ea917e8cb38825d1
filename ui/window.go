package ui

import (
	"context"
	"fmt"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/classicsweep/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"image/color"
)

type Config struct {
	Game game.Config

	// Board to play instead of a generated one
	Snapshot *game.BoardSnapshot
}

var numberColors = map[int]color.RGBA{
	1: colornames.Blue,
	2: colornames.Green,
	3: colornames.Red,
	4: colornames.Navy,
	5: colornames.Maroon,
	6: colornames.Teal,
	7: colornames.Black,
	8: colornames.Dimgray,
}

var faceLabels = map[game.Face]string{
	game.Smile:     ":)",
	game.Surprised: ":o",
	game.Dead:      "X(",
	game.Cool:      "B)",
}

// Run opens the game window and plays until it is closed. It must be called
// from the function passed to pixelgl.Run.
func Run(config Config) error {
	engine := game.NewEngine(config.Game)
	engine.AddObserver(&game.LogObserver{})
	if config.Snapshot != nil {
		if err := engine.Restore(config.Snapshot); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := game.NewLoop(engine, game.DefaultTickInterval)
	go func() {
		if err := loop.Run(ctx); err != nil && err != context.Canceled {
			game.Log.WithError(err).Error("game loop stopped")
		}
	}()

	l := layout{width: engine.Board().Width(), height: engine.Board().Height()}
	cfg := pixelgl.WindowConfig{
		Title:  "classicsweep",
		Bounds: l.bounds(),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	game.Log.WithFields(logrus.Fields{
		"width":  l.width,
		"height": l.height,
		"seed":   engine.Seed(),
	}).Info("window opened")

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	imd := imdraw.New(nil)
	labels := text.New(pixel.ZV, atlas)

	for !win.Closed() {
		win.Update()

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		in := readInput(win, l)
		var view game.View
		err := loop.Do(ctx, func(engine *game.Engine) {
			in.apply(engine)
			view = engine.View()
		})
		if err != nil {
			return err
		}

		win.Clear(colornames.Gainsboro)
		imd.Clear()
		labels.Clear()

		drawHeader(imd, labels, l, view)
		for _, tile := range view.Tiles {
			drawTile(imd, labels, l, tile)
		}

		imd.Draw(win)
		labels.Draw(win, pixel.IM)
	}

	return nil
}

func drawHeader(imd *imdraw.IMDraw, labels *text.Text, l layout, view game.View) {
	top := l.bounds().H()

	labels.Color = colornames.Darkred
	labels.Dot = pixel.V(12, top-30)
	fmt.Fprintf(labels, "%03d", view.MinesRemaining)

	labels.Dot = pixel.V(l.bounds().W()-40, top-30)
	fmt.Fprintf(labels, "%03d", int(view.Elapsed.Seconds()))

	face := l.faceRect()
	imd.Color = colornames.Gold
	imd.Push(face.Center())
	imd.Circle(faceSize/2, 0)

	label := faceLabels[view.Face]
	labels.Color = colornames.Black
	labels.Dot = labelDot(face.Center(), label)
	fmt.Fprint(labels, label)
}

func drawTile(imd *imdraw.IMDraw, labels *text.Text, l layout, tile game.TileView) {
	rect := l.tileRect(tile.X, tile.Y)
	inner := pixel.R(rect.Min.X+1, rect.Min.Y+1, rect.Max.X-1, rect.Max.Y-1)

	switch {
	case tile.Detonated:
		fillRect(imd, rect, colornames.Red)
	case tile.Opened || tile.Pressed:
		fillRect(imd, rect, colornames.Darkgray)
		fillRect(imd, inner, colornames.Lightgray)
	default:
		fillRect(imd, rect, colornames.Dimgray)
		fillRect(imd, inner, colornames.Silver)
	}

	center := rect.Center()
	isMine := tile.Value == game.MineValue

	switch {
	case tile.Flagged && tile.Opened && !isMine:
		// Wrong flag revealed by a loss
		drawMine(imd, center)
		imd.Color = colornames.Red
		imd.Push(inner.Min, inner.Max)
		imd.Line(2)
		imd.Push(pixel.V(inner.Min.X, inner.Max.Y), pixel.V(inner.Max.X, inner.Min.Y))
		imd.Line(2)
	case tile.Flagged:
		imd.Color = colornames.Red
		imd.Push(center.Add(pixel.V(-3, 5)), center.Add(pixel.V(4, 2)), center.Add(pixel.V(-3, -1)))
		imd.Polygon(0)
		imd.Color = colornames.Black
		imd.Push(center.Add(pixel.V(-3, 5)), center.Add(pixel.V(-3, -5)))
		imd.Line(1)
	case tile.Opened && isMine:
		drawMine(imd, center)
	case tile.Opened && tile.Value > 0:
		label := fmt.Sprint(tile.Value)
		labels.Color = numberColors[tile.Value]
		labels.Dot = labelDot(center, label)
		fmt.Fprint(labels, label)
	}
}

// labelDot is where to start writing label so it is centred on center
func labelDot(center pixel.Vec, label string) pixel.Vec {
	advance := basicfont.Face7x13.Advance
	return center.Sub(pixel.V(float64(advance*len(label))/2, 4))
}

func drawMine(imd *imdraw.IMDraw, center pixel.Vec) {
	imd.Color = colornames.Black
	imd.Push(center)
	imd.Circle(4, 0)
}

func fillRect(imd *imdraw.IMDraw, rect pixel.Rect, c color.Color) {
	imd.Color = c
	imd.Push(rect.Min, rect.Max)
	imd.Rectangle(0)
}
