package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridsnake/internal/game"
)

var keymap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:   game.KeyLeft,
	ebiten.KeyA:           game.KeyLeft,
	ebiten.KeyArrowUp:     game.KeyUp,
	ebiten.KeyW:           game.KeyUp,
	ebiten.KeyArrowRight:  game.KeyRight,
	ebiten.KeyD:           game.KeyRight,
	ebiten.KeyArrowDown:   game.KeyDown,
	ebiten.KeyS:           game.KeyDown,
	ebiten.KeyEnter:       game.KeyConfirm,
	ebiten.KeyNumpadEnter: game.KeyConfirm,
	ebiten.KeyP:           game.KeyPause,
	ebiten.KeyTab:         game.KeyCycleDifficulty,
	ebiten.KeyBackspace:   game.KeyBackspace,
}

func keyFor(k ebiten.Key) game.Key {
	if gk, ok := keymap[k]; ok {
		return gk
	}
	return game.KeyUnknown
}

// pressedKeys returns the game keys pressed since the last frame.
func pressedKeys() []game.Key {
	var out []game.Key
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if gk := keyFor(k); gk != game.KeyUnknown {
			out = append(out, gk)
		}
	}
	return out
}
