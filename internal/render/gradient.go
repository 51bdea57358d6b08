package render

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one color anchor of a Gradient, Offset in [0,1].
type Stop struct {
	Offset float64
	Color  colorful.Color
}

// Gradient is a linear color ramp.
type Gradient []Stop

// NewGradient sorts stops by offset.
func NewGradient(stops ...Stop) Gradient {
	g := Gradient(stops)
	sort.Slice(g, func(i, j int) bool { return g[i].Offset < g[j].Offset })
	return g
}

// At returns the blended color at t, clamped to the end stops.
func (g Gradient) At(t float64) color.Color {
	if len(g) == 0 {
		return color.White
	}
	if t <= g[0].Offset {
		return g[0].Color.Clamped()
	}
	for i := 1; i < len(g); i++ {
		a, b := g[i-1], g[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color.Clamped()
			}
			return a.Color.BlendRgb(b.Color, (t-a.Offset)/span).Clamped()
		}
	}
	return g[len(g)-1].Color.Clamped()
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// BannerGradient is the red, pink, blue ramp of the game-over banner.
var BannerGradient = NewGradient(
	Stop{0, hex("#ff0000")},
	Stop{0.5, hex("#ffc0cb")},
	Stop{1, hex("#0000ff")},
)
