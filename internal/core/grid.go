package core

// Wrap maps any cell onto a cols×rows torus. Each axis wraps independently.
func Wrap(c Cell, cols, rows int) Cell {
	return Cell{
		Col: (c.Col%cols + cols) % cols,
		Row: (c.Row%rows + rows) % rows,
	}
}

// Neighborhood returns the 3×3 block centred on c, wrapped onto the torus.
// The centre cell comes first, followed by the eight surrounding cells in
// row-major order.
func Neighborhood(c Cell, cols, rows int) [9]Cell {
	var out [9]Cell
	out[0] = Wrap(c, cols, rows)
	i := 1
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			out[i] = Wrap(Cell{Col: c.Col + dc, Row: c.Row + dr}, cols, rows)
			i++
		}
	}
	return out
}

// ByteGrid stores one byte per board cell in row-major order.
type ByteGrid struct {
	Cols, Rows int
	data       []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(cols, rows int) *ByteGrid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return &ByteGrid{Cols: cols, Rows: rows, data: make([]uint8, cols*rows)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{Cols: g.Cols, Rows: g.Rows} }

// Index returns the linear slice index for an in-range cell.
func (g *ByteGrid) Index(c Cell) int { return c.Row*g.Cols + c.Col }

// Wrap applies toroidal wrapping to the provided cell.
func (g *ByteGrid) Wrap(c Cell) Cell { return Wrap(c, g.Cols, g.Rows) }

// Contains reports whether c lies on the grid without wrapping.
func (g *ByteGrid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// At returns the value stored at c after wrapping.
func (g *ByteGrid) At(c Cell) uint8 { return g.data[g.Index(g.Wrap(c))] }

// Set stores v at c after wrapping.
func (g *ByteGrid) Set(c Cell, v uint8) { g.data[g.Index(g.Wrap(c))] = v }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
