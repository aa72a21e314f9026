package core

import (
	"fmt"
	"strings"
)

// Cell addresses a single board tile by column and row.
type Cell struct {
	Col int
	Row int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction enumerates the four headings a snake can take.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var offsets = [...]Cell{
	Up:    {Col: 0, Row: -1},
	Down:  {Col: 0, Row: 1},
	Left:  {Col: -1, Row: 0},
	Right: {Col: 1, Row: 0},
}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Valid reports whether d is one of the four named directions.
func (d Direction) Valid() bool { return int(d) < len(offsets) }

// Offset returns the one-cell step taken when moving along d.
func (d Direction) Offset() Cell {
	if !d.Valid() {
		return Cell{}
	}
	return offsets[d]
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection converts a direction name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
