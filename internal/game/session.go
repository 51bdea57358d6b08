// Package game holds the snake session: entity state, the simulation step and
// the steering rules. It draws nothing and never blocks.
package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gridsnake/internal/difficulty"
	"gridsnake/internal/grid"
)

// Status is the session's place in the start / play / replay cycle.
type Status int

const (
	NotStarted Status = iota
	Running
	GameOver
	AwaitingReplay
	Ended
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	case AwaitingReplay:
		return "awaiting-replay"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Settings are the operator choices a session is built from.
type Settings struct {
	Tiles       int
	BoardPixels float64
	Mode        string
	Difficulty  string
	StartLength int
	// ScaledGrowth grows the snake by the profile's GrowthStep per food
	// instead of a single segment.
	ScaledGrowth bool
}

// Session is one game: board, snake, food, score and status.
type Session struct {
	ID      uuid.UUID
	Grid    grid.Grid
	Profile difficulty.Profile
	Mode    string
	Status  Status
	Snake   Snake
	Food    Food
	Score   int
	Elapsed time.Duration
	Player  string

	settings Settings
	rng      *rand.Rand
}

// NewSession builds a session that has not started yet.
func NewSession(st Settings, rng *rand.Rand) *Session {
	s := &Session{
		settings: st,
		rng:      rng,
		Profile:  difficulty.MustResolve(difficulty.Default),
	}
	s.SelectDifficulty(st.Difficulty)
	s.Reset()
	s.Status = NotStarted
	return s
}

// SelectDifficulty switches to the named profile. Unknown names leave the
// current profile in place and report false.
func (s *Session) SelectDifficulty(name string) bool {
	p, ok := difficulty.Resolve(name)
	if !ok {
		return false
	}
	s.Profile = p
	s.settings.Difficulty = name
	return true
}

// Start moves a not-started session to Running.
func (s *Session) Start() bool {
	if s.Status != NotStarted {
		return false
	}
	s.Status = Running
	return true
}

// Reset puts every field back to its initial value for a fresh run and
// assigns a new ID. The caller sets Status.
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.Grid = grid.New(s.settings.Tiles, s.settings.BoardPixels)
	s.Mode = s.settings.Mode
	s.Score = 0
	s.Elapsed = 0
	s.Player = ""
	s.Snake = newSnake(s.Grid.Center(), s.settings.StartLength)
	s.relocateFood()
}

func (s *Session) relocateFood() {
	// One tile of margin so a new food never sits on the last row or column.
	span := s.Grid.Tiles - 1
	s.Food.Pos = grid.Point{X: s.rng.Intn(span), Y: s.rng.Intn(span)}
}

func (s *Session) growth() int {
	if s.settings.ScaledGrowth {
		return s.Profile.GrowthStep
	}
	return 1
}
