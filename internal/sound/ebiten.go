package sound

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/errors"
)

// Ebiten plays effects through ebiten's audio context.
type Ebiten struct {
	ctx      *audio.Context
	eat      *audio.Player
	crash    *audio.Player
	bgPlayer *audio.Player
}

// NewEbiten synthesizes the clips. Only one audio context may exist per process.
func NewEbiten() (*Ebiten, error) {
	ctx := audio.NewContext(SampleRate)
	e := &Ebiten{
		ctx:   ctx,
		eat:   ctx.NewPlayerFromBytes(tone(880, 0.1, 4000, 3)),
		crash: ctx.NewPlayerFromBytes(tone(220, 0.4, 4000, 3)),
	}
	buf := arpeggio([]float64{261.63, 329.63, 392.00, 523.25}, 0.25)
	loop := audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf)))
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, errors.Wrap(err, "background loop")
	}
	p.SetVolume(0.5)
	e.bgPlayer = p
	return e, nil
}

func replay(p *audio.Player) {
	_ = p.Rewind()
	p.Play()
}

func (e *Ebiten) Eat() { replay(e.eat) }
func (e *Ebiten) Crash() { replay(e.crash) }

func (e *Ebiten) Music(on bool) {
	if on {
		e.bgPlayer.Play()
		return
	}
	e.bgPlayer.Pause()
}

func (e *Ebiten) Close() {
	e.bgPlayer.Pause()
	_ = e.bgPlayer.Close()
}
