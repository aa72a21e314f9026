package game

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"

	"snake/internal/core"
)

// Distinct reports whether body holds no repeated positions apart from the
// growth placeholders at the tail end, which repeat the last cell.
func Distinct(body []core.Cell) bool {
	end := len(body)
	for end > 1 && body[end-2] == body[end-1] {
		end--
	}
	seen := make(map[core.Cell]struct{}, end)
	for _, c := range body[:end] {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// Audit checks the invariants that must hold across one tick, given the frame
// before it, the frame after it and the tick's result.
func Audit(before, after core.Frame, res core.MoveResult) error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	size := after.Size
	for _, c := range after.Body {
		if c.Col < 0 || c.Col >= size.Cols || c.Row < 0 || c.Row >= size.Rows {
			fail("segment %v outside %dx%d board", c, size.Cols, size.Rows)
		}
	}
	if len(after.Body) < 2 {
		fail("snake shrank to %d segments", len(after.Body))
	}
	if !Distinct(after.Body) {
		fail("snake overlaps itself: %v", after.Body)
	}

	switch {
	case before.Terminal:
		if res != (core.MoveResult{}) {
			fail("terminal session reported %+v", res)
		}
		if !after.Terminal || !slices.Equal(before.Body, after.Body) || before.Eaten != after.Eaten {
			fail("terminal session mutated")
		}
	case !res.OK:
		if res.Ate {
			fail("failed move reported a meal")
		}
		if !after.Terminal {
			fail("collision did not end the session")
		}
		if !slices.Equal(before.Body, after.Body) {
			fail("collision mutated the snake")
		}
	default:
		want := core.Wrap(before.Head().Add(after.Heading.Offset()), size.Cols, size.Rows)
		if after.Head() != want {
			fail("head moved to %v, want %v", after.Head(), want)
		}
		growth, meals := 0, 0
		if res.Ate {
			growth, meals = GrowthPerCherry, 1
		}
		if got := len(after.Body) - len(before.Body); got != growth {
			fail("length changed by %d, want %d", got, growth)
		}
		if got := after.Eaten - before.Eaten; got != meals {
			fail("eaten changed by %d, want %d", got, meals)
		}
		if res.Ate && after.HasFood && slices.Contains(after.Body, after.Food) {
			fail("cherry %v placed on the snake", after.Food)
		}
	}
	return result.ErrorOrNil()
}
