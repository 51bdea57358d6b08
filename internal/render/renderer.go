package render

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/rand"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
)

// HUDHeight is the strip below the board that holds the score line.
const HUDHeight = 40

var (
	boardColor = color.RGBA{0, 0, 0, 255}
	bodyColor  = color.RGBA{0, 128, 0, 255}
	headColor  = color.RGBA{255, 165, 0, 255}
	hudColor   = color.RGBA{24, 24, 28, 255}
	textColor  = color.RGBA{230, 230, 230, 255}
	dimColor   = color.RGBA{150, 150, 160, 255}
)

// FoodPalette holds the colors food flickers between.
var FoodPalette = []color.Color{
	color.RGBA{255, 165, 0, 255},   // orange
	color.RGBA{255, 192, 203, 255}, // pink
	color.RGBA{255, 0, 0, 255},     // red
	color.RGBA{255, 255, 0, 255},   // yellow
	color.RGBA{128, 0, 128, 255},   // purple
}

// Renderer draws sessions. It keeps the food color of the current frame.
type Renderer struct {
	rng       *rand.Rand
	foodColor color.Color
}

func New(rng *rand.Rand) *Renderer {
	r := &Renderer{rng: rng}
	r.Roll()
	return r
}

// Roll picks the food color for the next frame. The loop calls it once per tick.
func (r *Renderer) Roll() {
	r.foodColor = FoodPalette[r.rng.Intn(len(FoodPalette))]
}

// FoodColor is the color the next Frame will use for food.
func (r *Renderer) FoodColor() color.Color { return r.foodColor }

// Frame draws the board, the body, the head on top of the newest segment and
// the food.
func (r *Renderer) Frame(dst Surface, s *game.Session) {
	g := s.Grid
	ts := g.TileSize()
	dst.FillRect(0, 0, g.BoardPixels, g.BoardPixels, boardColor)
	for _, p := range s.Snake.Body {
		fillTile(dst, g, p, bodyColor)
	}
	if g.Contains(s.Snake.Head) {
		fillTile(dst, g, s.Snake.Head, headColor)
	}
	x, y := g.ToPixels(s.Food.Pos)
	dst.FillRect(x, y, ts, ts, r.foodColor)
}

func fillTile(dst Surface, g grid.Grid, p grid.Point, c color.Color) {
	x, y := g.ToPixels(p)
	ts := g.TileSize()
	dst.FillRect(x, y, ts, ts, c)
}

// Banner draws msg across the middle of the board in the banner gradient.
func (r *Renderer) Banner(dst Surface, g grid.Grid, msg string) {
	dst.GradientText(g.BoardPixels/2, msg, BannerGradient)
}

// HUD draws the score strip under the board.
func (r *Renderer) HUD(dst Surface, s *game.Session, paused bool) {
	g := s.Grid
	dst.FillRect(0, g.BoardPixels, g.BoardPixels, HUDHeight, hudColor)
	line := fmt.Sprintf("Score: %d   %s / %s", s.Score, s.Mode, s.Profile.Name)
	if paused {
		line += "   [paused]"
	}
	dst.Text(8, g.BoardPixels+12, line, textColor)
}

// TitleView is what the start screen shows.
type TitleView struct {
	Mode       string
	Difficulty string
	HighScore  int
}

// Title draws the start screen.
func (r *Renderer) Title(dst Surface, g grid.Grid, v TitleView) {
	dst.FillRect(0, 0, g.BoardPixels, g.BoardPixels+HUDHeight, boardColor)
	mid := g.BoardPixels / 2
	dst.GradientText(mid-80, "Snake!", BannerGradient)
	lines := []string{
		"Mode: " + v.Mode,
		"Difficulty: " + v.Difficulty + "   (Tab or 1-3 to change)",
		"Arrows/WASD: move   P: pause",
		"Press Enter to start",
	}
	for i, l := range lines {
		c := textColor
		if i == len(lines)-1 {
			c = headColor
		}
		dst.CenterText(mid-20+float64(i)*24, l, c)
	}
	if v.HighScore > 0 {
		dst.CenterText(mid+100, fmt.Sprintf("High score: %d", v.HighScore), dimColor)
	}
}

// PromptView is the replay dialog state.
type PromptView struct {
	AskingName bool
	Name       string
	Score      int
}

// Prompt draws the replay dialog over whatever is on the board.
func (r *Renderer) Prompt(dst Surface, g grid.Grid, v PromptView) {
	mid := g.BoardPixels / 2
	dst.FillRect(0, mid+30, g.BoardPixels, 90, hudColor)
	dst.CenterText(mid+40, fmt.Sprintf("Final score: %d", v.Score), textColor)
	if v.AskingName {
		dst.CenterText(mid+68, "Enter your name: "+v.Name+"_", textColor)
		dst.CenterText(mid+92, "Enter to confirm", dimColor)
		return
	}
	dst.CenterText(mid+68, "Do you want to play again? (y/n)", textColor)
}

// Goodbye draws the idle screen after the operator declines to replay.
func (r *Renderer) Goodbye(dst Surface, g grid.Grid, name string) {
	dst.FillRect(0, 0, g.BoardPixels, g.BoardPixels+HUDHeight, boardColor)
	msg := "Thanks for playing"
	if name != "" {
		msg += ", " + name
	}
	dst.CenterText(g.BoardPixels/2, msg, textColor)
	dst.CenterText(g.BoardPixels/2+24, "Esc to quit", dimColor)
}
