package game

import "gridsnake/internal/grid"

// Snake is the player. Body holds past head positions, oldest first; the
// current head is appended only by CommitBody, after the tick's collision test.
type Snake struct {
	Head     grid.Point
	Prev     grid.Point
	Velocity grid.Point
	Body     []grid.Point
	Length   int
}

// Occupies reports whether p is one of the body segments.
func (s *Snake) Occupies(p grid.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Moving reports whether the snake has a non-zero velocity.
func (s *Snake) Moving() bool { return !s.Velocity.IsZero() }

func newSnake(head grid.Point, length int) Snake {
	return Snake{
		Head:   head,
		Prev:   head,
		Body:   make([]grid.Point, 0, length+1),
		Length: length,
	}
}

// Food is the single item on the board.
type Food struct {
	Pos grid.Point
}
