package game

import (
	"slices"
	"testing"

	"snake/internal/core"
)

// fakeTerrain is a board stand-in that records food placement requests.
type fakeTerrain struct {
	cols, rows int
	edible     map[core.Cell]bool
	placed     [][]core.Cell
}

func newFakeTerrain(cols, rows int, edible ...core.Cell) *fakeTerrain {
	t := &fakeTerrain{cols: cols, rows: rows, edible: map[core.Cell]bool{}}
	for _, c := range edible {
		t.edible[c] = true
	}
	return t
}

func (t *fakeTerrain) Wrap(c core.Cell) core.Cell { return core.Wrap(c, t.cols, t.rows) }

func (t *fakeTerrain) Edible(c core.Cell) bool { return t.edible[c] }

func (t *fakeTerrain) PlaceFood(occupied []core.Cell) {
	t.placed = append(t.placed, slices.Clone(occupied))
	t.edible = map[core.Cell]bool{}
}

func cells(pairs ...int) []core.Cell {
	out := make([]core.Cell, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, core.Cell{Col: pairs[i], Row: pairs[i+1]})
	}
	return out
}

func TestSnakeMovesAlongHeading(t *testing.T) {
	s := NewSnake(cells(0, 1, 0, 0), core.Right)
	ter := newFakeTerrain(10, 10)

	ok, ate := s.Move(ter)
	if !ok || ate {
		t.Fatalf("Move = (%v, %v), want (true, false)", ok, ate)
	}
	if want := cells(1, 1, 0, 1); !slices.Equal(s.Body(), want) {
		t.Fatalf("body = %v, want %v", s.Body(), want)
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(cells(0, 1, 0, 0), core.Right)
	if s.SetHeading(core.Left) {
		t.Fatal("reversal reported as applied")
	}
	if s.Heading() != core.Right {
		t.Fatalf("heading = %v, want right", s.Heading())
	}
	if !s.SetHeading(core.Down) || s.Heading() != core.Down {
		t.Fatalf("turn down not applied, heading = %v", s.Heading())
	}
	if s.SetHeading(core.Up) || s.Heading() != core.Down {
		t.Fatalf("reversal from down applied, heading = %v", s.Heading())
	}
	if s.SetHeading(core.Direction(42)) || s.Heading() != core.Down {
		t.Fatal("unknown direction changed the heading")
	}
}

func TestSnakeGrowsByTwoAndRequestsFood(t *testing.T) {
	s := NewSnake(cells(3, 5, 2, 5), core.Right)
	ter := newFakeTerrain(10, 10, core.Cell{Col: 4, Row: 5})

	ok, ate := s.Move(ter)
	if !ok || !ate {
		t.Fatalf("Move = (%v, %v), want (true, true)", ok, ate)
	}
	if want := cells(4, 5, 3, 5, 2, 5, 2, 5); !slices.Equal(s.Body(), want) {
		t.Fatalf("body = %v, want %v", s.Body(), want)
	}
	if s.Eaten() != 1 {
		t.Fatalf("eaten = %d, want 1", s.Eaten())
	}
	if len(ter.placed) != 1 || !slices.Equal(ter.placed[0], s.Body()) {
		t.Fatalf("food request = %v, want one request excluding %v", ter.placed, s.Body())
	}

	// The placeholder unfolds: the next two moves keep the length at four.
	for i := 0; i < 2; i++ {
		if ok, ate := s.Move(ter); !ok || ate {
			t.Fatalf("follow-up move %d = (%v, %v)", i, ok, ate)
		}
		if s.Len() != 4 {
			t.Fatalf("length = %d after move %d, want 4", s.Len(), i)
		}
	}
	if want := cells(6, 5, 5, 5, 4, 5, 3, 5); !slices.Equal(s.Body(), want) {
		t.Fatalf("body = %v, want %v", s.Body(), want)
	}
}

func TestSnakeCollisionIncludesTail(t *testing.T) {
	body := cells(1, 1, 1, 0, 0, 0, 0, 1)
	s := NewSnake(body, core.Left)
	ter := newFakeTerrain(10, 10)

	ok, ate := s.Move(ter)
	if ok || ate {
		t.Fatalf("Move onto tail = (%v, %v), want (false, false)", ok, ate)
	}
	if !slices.Equal(s.Body(), body) {
		t.Fatalf("collision mutated body: %v", s.Body())
	}
	if len(ter.placed) != 0 {
		t.Fatal("collision requested food")
	}
}

func TestSnakeWrapsAcrossEdges(t *testing.T) {
	s := NewSnake(cells(0, 0, 1, 0), core.Left)
	ter := newFakeTerrain(4, 3)
	if ok, _ := s.Move(ter); !ok {
		t.Fatal("wrapping move failed")
	}
	if s.Head() != (core.Cell{Col: 3, Row: 0}) {
		t.Fatalf("head = %v, want (3,0)", s.Head())
	}
	s.SetHeading(core.Up)
	s.Move(ter)
	if s.Head() != (core.Cell{Col: 3, Row: 2}) {
		t.Fatalf("head = %v, want (3,2)", s.Head())
	}
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := cells(0, 1, 0, 0)
	s := NewSnake(body, core.Right)
	body[0] = core.Cell{Col: 9, Row: 9}
	if s.Head() != (core.Cell{Col: 0, Row: 1}) {
		t.Fatal("snake aliases the caller's slice")
	}
	out := s.Body()
	out[0] = core.Cell{Col: 7, Row: 7}
	if s.Head() != (core.Cell{Col: 0, Row: 1}) {
		t.Fatal("Body exposes internal storage")
	}
}
