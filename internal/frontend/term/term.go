// Package term runs the game inside a terminal through tcell.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"gridsnake/internal/game"
	"gridsnake/internal/loop"
)

const frameRate = 60

// keyFor maps a tcell key event to a game key. Letters are reported as runes
// too, so the loop can treat them as text while the replay prompt is open.
func keyFor(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyEnter:
		return game.KeyConfirm
	case tcell.KeyTab:
		return game.KeyCycleDifficulty
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.KeyBackspace
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.KeyLeft
		case 'w', 'W':
			return game.KeyUp
		case 'd', 'D':
			return game.KeyRight
		case 's', 'S':
			return game.KeyDown
		case 'p', 'P':
			return game.KeyPause
		}
	}
	return game.KeyUnknown
}

func quits(ev *tcell.EventKey, st game.Status) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyEscape && (st == game.Ended || st == game.NotStarted)
}

// Run takes over the terminal until the player quits.
func Run(l *loop.Loop) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer s.Fini()
	s.HideCursor()
	return run(s, l)
}

func run(s tcell.Screen, l *loop.Loop) error {
	g := l.Session().Grid
	surface := newCells(s, g.TileSize(), g.Tiles)

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / frameRate)
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if quits(e, l.Status()) {
					return nil
				}
				if k := keyFor(e); k != game.KeyUnknown {
					l.Key(k)
				}
				if e.Key() == tcell.KeyRune {
					l.Rune(e.Rune())
				}
			}
		case <-frame.C:
			l.Update()
			s.Clear()
			l.Draw(surface)
			s.Show()
		}
	}
}
