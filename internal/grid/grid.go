// Package grid maps the square game board between tiles and pixels.
package grid

// Point is a tile coordinate. Positive X is right, positive Y is down.
type Point struct{ X, Y int }

// Add returns p moved by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// IsZero reports whether p is the (0,0) vector.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Grid is a square board of Tiles×Tiles cells drawn over BoardPixels logical units.
// Tiles must be greater than 1.
type Grid struct {
	Tiles       int
	BoardPixels float64
}

// New returns a grid with the given tile count and board size.
func New(tiles int, boardPixels float64) Grid {
	return Grid{Tiles: tiles, BoardPixels: boardPixels}
}

// TileSize is the edge of one tile in logical units. It can be fractional.
func (g Grid) TileSize() float64 {
	return g.BoardPixels / float64(g.Tiles)
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Tiles && p.Y < g.Tiles
}

// Center is the starting tile for the snake head.
func (g Grid) Center() Point {
	return Point{g.Tiles / 2, g.Tiles / 2}
}

// ToPixels returns the top-left corner of p in logical units.
func (g Grid) ToPixels(p Point) (x, y float64) {
	ts := g.TileSize()
	return float64(p.X) * ts, float64(p.Y) * ts
}
