package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/render"
)

// colsPerTile keeps tiles roughly square on a terminal.
const colsPerTile = 2

// cells is a render.Surface over a tcell screen. One tile is colsPerTile
// columns by one row; anything outside the screen is clipped.
type cells struct {
	screen tcell.Screen
	cx, cy float64 // cells per logical unit
	width  int     // board width in columns
}

var _ render.Surface = (*cells)(nil)

func newCells(s tcell.Screen, tileSize float64, tiles int) *cells {
	return &cells{
		screen: s,
		cx:     colsPerTile / tileSize,
		cy:     1 / tileSize,
		width:  tiles * colsPerTile,
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (c *cells) put(x, y int, r rune, st tcell.Style) {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.screen.SetContent(x, y, r, nil, st)
}

func (c *cells) FillRect(x, y, w, h float64, clr color.Color) {
	st := tcell.StyleDefault.Background(toColor(clr))
	c0, c1 := int(math.Round(x*c.cx)), int(math.Round((x+w)*c.cx))
	r0, r1 := int(math.Round(y*c.cy)), int(math.Round((y+h)*c.cy))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.put(col, row, ' ', st)
		}
	}
}

func (c *cells) text(col, row int, s string, style func(i, col int) tcell.Style) {
	i := 0
	for _, r := range s {
		c.put(col+i, row, r, style(i, col+i))
		i++
	}
}

func (c *cells) Text(x, y float64, s string, clr color.Color) {
	st := tcell.StyleDefault.Foreground(toColor(clr))
	c.text(int(x*c.cx), int(y*c.cy), s, func(int, int) tcell.Style { return st })
}

func (c *cells) center(s string) int {
	return (c.width - len([]rune(s))) / 2
}

func (c *cells) CenterText(y float64, s string, clr color.Color) {
	st := tcell.StyleDefault.Foreground(toColor(clr))
	c.text(c.center(s), int(y*c.cy), s, func(int, int) tcell.Style { return st })
}

func (c *cells) GradientText(y float64, s string, g render.Gradient) {
	c.text(c.center(s), int(y*c.cy), s, func(_, col int) tcell.Style {
		return tcell.StyleDefault.Bold(true).Foreground(toColor(g.At(float64(col) / float64(c.width))))
	})
}
