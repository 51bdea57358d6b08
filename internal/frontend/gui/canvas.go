package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridsnake/internal/render"
)

// Debug font cell.
const (
	glyphW = 6
	glyphH = 16

	bannerScale = 4
	maxCached   = 128
)

// canvas is a render.Surface over an ebiten image. Text is printed once with
// the debug font into a white mask and tinted on every draw.
type canvas struct {
	dst   *ebiten.Image
	width float64
	masks map[string]*ebiten.Image
}

func newCanvas(width float64) *canvas {
	return &canvas{width: width, masks: map[string]*ebiten.Image{}}
}

var _ render.Surface = (*canvas)(nil)

func (c *canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *canvas) mask(s string) *ebiten.Image {
	if m, ok := c.masks[s]; ok {
		return m
	}
	if len(c.masks) >= maxCached {
		for k, m := range c.masks {
			m.Deallocate()
			delete(c.masks, k)
		}
	}
	m := ebiten.NewImage(max(1, textWidth(s)), glyphH)
	ebitenutil.DebugPrint(m, s)
	c.masks[s] = m
	return m
}

func textWidth(s string) int { return len([]rune(s)) * glyphW }

func (c *canvas) Text(x, y float64, s string, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(c.mask(s), op)
}

func (c *canvas) CenterText(y float64, s string, clr color.Color) {
	c.Text((c.width-float64(textWidth(s)))/2, y, s, clr)
}

// GradientText scales the mask up and tints it one source column at a time,
// so the ramp runs across the whole board rather than just the text.
func (c *canvas) GradientText(y float64, s string, g render.Gradient) {
	m := c.mask(s)
	w := textWidth(s)
	x0 := (c.width - float64(w*bannerScale)) / 2
	top := y - float64(glyphH*bannerScale)/2
	for col := 0; col < w; col++ {
		x := x0 + float64(col*bannerScale)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bannerScale, bannerScale)
		op.GeoM.Translate(x, top)
		op.ColorScale.ScaleWithColor(g.At(x / c.width))
		strip := m.SubImage(image.Rect(col, 0, col+1, glyphH)).(*ebiten.Image)
		c.dst.DrawImage(strip, op)
	}
}
