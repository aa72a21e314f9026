package game

import "snake/internal/core"

// Food placement strategies, reported in logs.
const (
	placedRandom    = "random"
	placedInterior  = "interior"
	placedEdge      = "edge"
	placedExhausted = "exhausted"
)

// placeFood picks a new cherry cell not in occupied. The cherry is kept one
// cell away from the board edge so its 3×3 edible block stays on the board
// without wrapping. Random draws are tried first; if they keep hitting the
// snake, a uniform pick from the list of free interior cells follows, then
// from the free cells anywhere. With no free cell left the board has no
// cherry until the next placement.
func (b *Board) placeFood(occupied []core.Cell) {
	b.occupied.Clear()
	for _, c := range occupied {
		b.occupied.Set(c, 1)
	}

	cell, how := b.pickFood()
	if how == placedExhausted {
		b.hasFood = false
		b.log.Warn().Int("occupied", len(occupied)).Msg("no free cell for cherry")
		return
	}
	b.setFood(cell)
	b.log.Debug().Stringer("cherry", cell).Str("strategy", how).Msg("cherry placed")
}

func (b *Board) pickFood() (core.Cell, string) {
	minCol, maxCol := 1, b.cols-2
	minRow, maxRow := 1, b.rows-2

	for i := 0; i < b.cfg.FoodRetries; i++ {
		c := core.Cell{Col: b.rng.Range(minCol, maxCol), Row: b.rng.Range(minRow, maxRow)}
		if b.occupied.At(c) == 0 {
			return c, placedRandom
		}
	}

	if c, ok := b.pickFree(minCol, maxCol, minRow, maxRow); ok {
		return c, placedInterior
	}
	if c, ok := b.pickFree(0, b.cols-1, 0, b.rows-1); ok {
		return c, placedEdge
	}
	return core.Cell{}, placedExhausted
}

// pickFree chooses uniformly among the unoccupied cells of a rectangle.
func (b *Board) pickFree(minCol, maxCol, minRow, maxRow int) (core.Cell, bool) {
	var free []core.Cell
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			c := core.Cell{Col: col, Row: row}
			if b.occupied.At(c) == 0 {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, false
	}
	return free[b.rng.IntN(len(free))], true
}

// setFood puts the cherry on c and recomputes its edible block.
func (b *Board) setFood(c core.Cell) {
	b.food = b.Wrap(c)
	b.hasFood = true
	b.edible = core.Neighborhood(b.food, b.cols, b.rows)
}
