package game

// Snake is the player's body, head first
type Snake struct {
	Direction Direction
	Fragments []Fragment
}

// NewSnake builds a straight snake of the given length with its head at head,
// its body trailing away from dir.
func NewSnake(head Position, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Delta()
	fragments := make([]Fragment, 0, length)
	pos := head
	for i := 0; i < length; i++ {
		fragments = append(fragments, Fragment{Pos: pos})
		pos = pos.Add(back)
	}
	return &Snake{
		Direction: dir,
		Fragments: fragments,
	}
}

// Head returns the head position
func (s *Snake) Head() Position {
	return s.Fragments[0].Pos
}

// Tail returns the last fragment position
func (s *Snake) Tail() Position {
	return s.Fragments[len(s.Fragments)-1].Pos
}

// Len returns the number of fragments
func (s *Snake) Len() int {
	return len(s.Fragments)
}

// Turn changes direction unless dir would reverse the snake onto itself.
// Reports whether the direction changed.
func (s *Snake) Turn(dir Direction) bool {
	if dir == s.Direction.Opposite() || dir == s.Direction {
		return false
	}
	s.Direction = dir
	return true
}

// Advance moves the head one cell forward. The tail is kept when hasEaten,
// so the snake grows by one.
func (s *Snake) Advance(hasEaten bool) {
	if len(s.Fragments) == 0 {
		panic("game: advance on empty snake")
	}

	newHead := Fragment{Pos: s.Head().Add(s.Direction.Delta())}
	s.Fragments = append([]Fragment{newHead}, s.Fragments...)

	if !hasEaten {
		s.Fragments = s.Fragments[:len(s.Fragments)-1]
	}
}

// Occupies reports whether any fragment sits on p
func (s *Snake) Occupies(p Position) bool {
	for _, f := range s.Fragments {
		if f.Pos == p {
			return true
		}
	}
	return false
}

// Positions returns the set of occupied cells
func (s *Snake) Positions() map[Position]bool {
	occupied := make(map[Position]bool, len(s.Fragments))
	for _, f := range s.Fragments {
		occupied[f.Pos] = true
	}
	return occupied
}
