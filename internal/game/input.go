package game

import "gridsnake/internal/grid"

// Direction is one of the four steering requests.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Vector is the unit velocity for d.
func (d Direction) Vector() grid.Point {
	switch d {
	case Left:
		return grid.Point{X: -1}
	case Up:
		return grid.Point{Y: -1}
	case Right:
		return grid.Point{X: 1}
	case Down:
		return grid.Point{Y: 1}
	}
	return grid.Point{}
}

// Key is a front-end independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyConfirm
	KeyPause
	KeyCycleDifficulty
	KeyBackspace
)

// Direction returns the steering request for k, if it is one.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyLeft:
		return Left, true
	case KeyUp:
		return Up, true
	case KeyRight:
		return Right, true
	case KeyDown:
		return Down, true
	}
	return 0, false
}

// Steer sets the velocity to d unless d reverses the snake along the axis it
// is already moving on.
func (s *Session) Steer(d Direction) bool {
	v := s.Snake.Velocity
	want := d.Vector()
	if want.X != 0 && want.X == -v.X {
		return false
	}
	if want.Y != 0 && want.Y == -v.Y {
		return false
	}
	s.Snake.Velocity = want
	return true
}
