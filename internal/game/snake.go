package game

import (
	"slices"

	"snake/internal/core"
)

// GrowthPerCherry is the net number of segments gained per cherry eaten.
const GrowthPerCherry = 2

// terrain is what a snake needs from the board it moves on.
type terrain interface {
	Wrap(c core.Cell) core.Cell
	Edible(c core.Cell) bool
	PlaceFood(occupied []core.Cell)
}

// Snake is the ordered list of occupied cells plus the current heading.
// body[0] is the head.
//
// Growth keeps the old tail and repeats the tail cell once, so right after
// eating the last two entries share a position. The repeat unfolds as the
// snake moves on; it never appears anywhere but the tail end.
type Snake struct {
	body    []core.Cell
	heading core.Direction
	eaten   int
}

// NewSnake returns a snake occupying body (head first) and facing heading.
// The body is copied.
func NewSnake(body []core.Cell, heading core.Direction) *Snake {
	return &Snake{body: slices.Clone(body), heading: heading}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell { return s.body[0] }

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []core.Cell { return slices.Clone(s.body) }

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Heading returns the current heading.
func (s *Snake) Heading() core.Direction { return s.heading }

// Eaten returns how many cherries the snake has eaten.
func (s *Snake) Eaten() int { return s.eaten }

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c core.Cell) bool { return slices.Contains(s.body, c) }

// SetHeading turns the snake. A request to reverse straight back, or an
// unknown direction, is ignored and reported as false.
func (s *Snake) SetHeading(d core.Direction) bool {
	if !d.Valid() || d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Move advances the snake one cell along its heading.
//
// The candidate head is checked against the whole pre-move body, tail
// included, so stepping onto the cell the tail is about to leave is a
// collision. On collision nothing is mutated and (false, false) is returned.
func (s *Snake) Move(t terrain) (ok, ate bool) {
	next := t.Wrap(s.Head().Add(s.heading.Offset()))
	if s.Occupies(next) {
		return false, false
	}

	s.body = slices.Insert(s.body, 0, next)
	if t.Edible(next) {
		s.eaten++
		s.body = append(s.body, s.body[len(s.body)-1])
		t.PlaceFood(s.body)
		return true, true
	}
	s.body = s.body[:len(s.body)-1]
	return true, false
}
