package core

// Size describes board dimensions in cells.
type Size struct {
	Cols int
	Rows int
}

// MoveResult reports the outcome of a single tick. OK is false only when the
// snake ran into itself; Ate is true when the new head landed on the cherry.
type MoveResult struct {
	OK  bool
	Ate bool
}

// Frame is a value copy of everything a presentation layer needs to draw one
// frame. Body[0] is the head.
type Frame struct {
	Size     Size
	Body     []Cell
	Heading  Direction
	Food     Cell
	HasFood  bool
	Edible   []Cell
	Eaten    int
	Score    int
	Ticks    int
	Terminal bool
}

// Head returns the head cell, or the zero cell for an empty frame.
func (f Frame) Head() Cell {
	if len(f.Body) == 0 {
		return Cell{}
	}
	return f.Body[0]
}

// Session defines the contract between a running game and the code that
// drives and draws it.
type Session interface {
	Size() Size
	Frame() Frame
	SetHeading(d Direction)
	Tick() MoveResult
	Terminal() bool
}

// SessionFactory starts a fresh session, e.g. after the previous one ended.
type SessionFactory func() (Session, error)
