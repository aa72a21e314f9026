//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"snake/internal/core"
)

// Overlay draws the end-of-game banner over the playing field.
type Overlay struct {
	tile int
}

// NewOverlay constructs an overlay for boards drawn with tile pixels per cell.
func NewOverlay(tile int) *Overlay {
	if tile <= 0 {
		tile = 1
	}
	return &Overlay{tile: tile}
}

// Draw dims the field and centres the banner on it when f is terminal.
func (o *Overlay) Draw(screen *ebiten.Image, f core.Frame) {
	if o == nil || !f.Terminal {
		return
	}
	w := f.Size.Cols * o.tile
	h := f.Size.Rows * o.tile
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 140}, false)

	face := basicfont.Face7x13
	lines := GameOverLines(f)
	y := h/2 - len(lines)*lineStep/2
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		x := (w - bounds.Dx()) / 2
		col := valueColor
		if i == 0 {
			col = labelColor
		}
		text.Draw(screen, line, face, x, y, col)
		y += lineStep + 4
	}
}
