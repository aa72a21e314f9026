package render

import (
	"image/color"

	"snake/internal/core"
)

// Layer values written into the raster, in increasing draw priority.
const (
	LayerBoard uint8 = iota
	LayerEdible
	LayerBody
	LayerHead
	LayerDead
)

// Palette colours, indexed by layer.
var (
	BoardColor  = color.RGBA{R: 105, G: 225, B: 65, A: 255}
	EdibleColor = color.RGBA{R: 95, G: 205, B: 60, A: 255}
	SnakeColor  = color.RGBA{R: 68, G: 105, B: 125, A: 255}
	HeadColor   = color.RGBA{R: 40, G: 70, B: 90, A: 255}
	DeadColor   = color.RGBA{R: 120, G: 40, B: 40, A: 255}
	CherryColor = color.RGBA{R: 225, G: 65, B: 105, A: 255}
	BorderColor = color.RGBA{R: 214, G: 218, B: 219, A: 255}
)

// DefaultPalette maps each layer to its colour.
var DefaultPalette = []color.RGBA{
	LayerBoard:  BoardColor,
	LayerEdible: EdibleColor,
	LayerBody:   SnakeColor,
	LayerHead:   HeadColor,
	LayerDead:   DeadColor,
}

// Rasterize writes one layer value per board cell into dst. Later layers win:
// the head is drawn over the body, the body over the cherry's edible block.
// A terminal frame paints the head with LayerDead.
func Rasterize(dst *core.ByteGrid, f core.Frame) {
	dst.Clear()
	for _, c := range f.Edible {
		dst.Set(c, LayerEdible)
	}
	for i := len(f.Body) - 1; i > 0; i-- {
		dst.Set(f.Body[i], LayerBody)
	}
	if len(f.Body) > 0 {
		head := LayerHead
		if f.Terminal {
			head = LayerDead
		}
		dst.Set(f.Body[0], head)
	}
}

// FillRGBA converts layer values into RGBA pixels using a palette. Values past
// the end of the palette use its last colour. When the palette is empty the
// buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
