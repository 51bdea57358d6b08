// Package render draws a game session onto any Surface. The ebiten and tcell
// front ends each provide one; all coordinates are board logical units.
package render

import "image/color"

// Surface is the drawing target. It only needs filled rectangles and text.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	Text(x, y float64, s string, c color.Color)
	CenterText(y float64, s string, c color.Color)
	// GradientText centers s on the row at y and colors it with g spread
	// across the full surface width.
	GradientText(y float64, s string, g Gradient)
}
