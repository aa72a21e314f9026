//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake/internal/core"
)

const borderWidth = 5

// GridPainter draws board frames through a cell-sized image that is scaled up
// to the tile size.
type GridPainter struct {
	layer   *core.ByteGrid
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	layer := core.NewByteGrid(size.Cols, size.Rows)
	return &GridPainter{
		layer:   layer,
		img:     ebiten.NewImage(layer.Cols, layer.Rows),
		buf:     make([]byte, 4*layer.Cols*layer.Rows),
		palette: DefaultPalette,
	}
}

// Size returns the board size the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.layer.Size() }

// Draw paints f at the top-left of dst with tile pixels per cell. Frames of
// a different size are skipped.
func (gp *GridPainter) Draw(dst *ebiten.Image, f core.Frame, tile int) {
	if f.Size != gp.layer.Size() {
		return
	}
	if tile <= 0 {
		tile = 1
	}
	Rasterize(gp.layer, f)
	FillRGBA(gp.buf, gp.layer.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(tile), float64(tile))
	dst.DrawImage(gp.img, op)

	w := float32(f.Size.Cols * tile)
	h := float32(f.Size.Rows * tile)
	vector.StrokeRect(dst, 0, 0, w, h, borderWidth, BorderColor, false)

	if f.HasFood {
		// The cherry sprite is 1.5 tiles wide with its corner on the food cell.
		r := float32(tile) * 0.75
		x := float32(f.Food.Col*tile) + r
		y := float32(f.Food.Row*tile) + r
		vector.DrawFilledCircle(dst, x, y, r, CherryColor, true)
	}
}
