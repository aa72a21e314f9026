package core

import "testing"

func TestDirectionOffsets(t *testing.T) {
	origin := Cell{Col: 5, Row: 5}
	want := map[Direction]Cell{
		Up:    {Col: 5, Row: 4},
		Down:  {Col: 5, Row: 6},
		Left:  {Col: 4, Row: 5},
		Right: {Col: 6, Row: 5},
	}
	for d, cell := range want {
		if got := origin.Add(d.Offset()); got != cell {
			t.Fatalf("%v: got %v, want %v", d, got, cell)
		}
		if d.Opposite().Opposite() != d {
			t.Fatalf("%v: opposite is not an involution", d)
		}
		if origin.Add(d.Offset()).Add(d.Opposite().Offset()) != origin {
			t.Fatalf("%v: opposite offset does not cancel", d)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(" " + d.String() + " ")
		if err != nil || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestInvalidDirection(t *testing.T) {
	d := Direction(9)
	if d.Valid() {
		t.Fatal("Direction(9) should be invalid")
	}
	if d.Offset() != (Cell{}) {
		t.Fatal("invalid direction should not move")
	}
}
