package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const beepRate = beep.SampleRate(SampleRate)

// Beep plays effects on the system speaker through gopxl/beep. The terminal
// front end uses it since it has no ebiten audio context.
type Beep struct{}

// NewBeep opens the speaker.
func NewBeep() (*Beep, error) {
	if err := speaker.Init(beepRate, beepRate.N(100*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "speaker init")
	}
	return &Beep{}, nil
}

func (b *Beep) play(freq float64, d time.Duration) {
	sine, err := generators.SineTone(beepRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(beepRate.N(d), sine))
}

func (b *Beep) Eat() { b.play(880, 100*time.Millisecond) }
func (b *Beep) Crash() { b.play(220, 400*time.Millisecond) }

func (b *Beep) Music(bool) {}

func (b *Beep) Close() { speaker.Clear() }
