// Package gui runs the game in an ebiten window.
package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridsnake/internal/game"
	"gridsnake/internal/loop"
	"gridsnake/internal/render"
)

const (
	windowW = 1280
	windowH = 720
)

// Game adapts a loop to ebiten.Game.
type Game struct {
	loop         *loop.Loop
	canvas       *canvas
	isFullscreen bool
}

func NewGame(l *loop.Loop) *Game {
	return &Game{
		loop:   l,
		canvas: newCanvas(l.Session().Grid.BoardPixels),
	}
}

func (g *Game) Update() error {
	// Toggle maximized with F
	if inpututil.IsKeyJustPressed(ebiten.KeyF) && g.loop.Status() != game.AwaitingReplay {
		g.isFullscreen = !g.isFullscreen
		if g.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			ebiten.RestoreWindow()
			ebiten.SetWindowSize(windowW, windowH)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.loop.Status() == game.Ended {
			return ebiten.Termination
		}
		if g.isFullscreen {
			g.isFullscreen = false
			ebiten.RestoreWindow()
			ebiten.SetWindowSize(windowW, windowH)
		}
	}

	for _, k := range pressedKeys() {
		g.loop.Key(k)
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.loop.Rune(r)
	}
	g.loop.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.loop.Draw(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.isFullscreen = ebiten.IsWindowMaximized()
	board := int(g.loop.Session().Grid.BoardPixels)
	return board, board + render.HUDHeight
}

// Run opens the window and blocks until the player quits.
func Run(l *loop.Loop, title string) error {
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	err := ebiten.RunGame(NewGame(l))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
