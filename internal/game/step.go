package game

// Cause says why a step ended the game.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// StepResult reports what happened during one Advance.
type StepResult struct {
	Ate      bool
	Terminal bool
	Cause    Cause
}

// Advance moves the head one tile along the velocity, eats food under the new
// head and reports whether the session hit a wall or itself.
func (s *Session) Advance() StepResult {
	sn := &s.Snake
	sn.Prev = sn.Head
	sn.Head = sn.Head.Add(sn.Velocity)
	s.Elapsed += s.Profile.Interval()

	var res StepResult
	if sn.Head == s.Food.Pos {
		s.relocateFood()
		sn.Length += s.growth()
		s.Score++
		res.Ate = true
	}
	res.Cause = s.collision()
	res.Terminal = res.Cause != CauseNone
	return res
}

// collision runs against the body as it stood before this tick's append.
func (s *Session) collision() Cause {
	sn := &s.Snake
	if !sn.Moving() {
		return CauseNone
	}
	if !s.Grid.Contains(sn.Head) {
		return CauseWall
	}
	if sn.Occupies(sn.Head) {
		return CauseSelf
	}
	return CauseNone
}

// CommitBody appends the head to the body and drops the oldest segments
// beyond the target length.
func (s *Session) CommitBody() {
	sn := &s.Snake
	sn.Body = append(sn.Body, sn.Head)
	if over := len(sn.Body) - sn.Length; over > 0 {
		sn.Body = append(sn.Body[:0], sn.Body[over:]...)
	}
}
