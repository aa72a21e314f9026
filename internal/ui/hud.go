//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"snake/internal/core"
)

var (
	stripColor = color.RGBA{R: 48, G: 39, B: 27, A: 255}
	labelColor = color.RGBA{R: 255, G: 191, B: 128, A: 255}
	valueColor = color.RGBA{R: 214, G: 218, B: 219, A: 255}
	infoColor  = color.RGBA{R: 160, G: 150, B: 135, A: 255}
)

// HUD renders the score strip below the playing field.
type HUD struct {
	session core.Session
	width   int
	height  int
	strip   *ebiten.Image

	score    int
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a score strip of the given pixel size.
func NewHUD(session core.Session, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &HUD{session: session, width: width, height: height}
}

// SetSession points the HUD at a new session, e.g. after a restart.
func (h *HUD) SetSession(session core.Session) {
	if h == nil {
		return
	}
	h.session = session
}

// Update refreshes the cached score and parameter snapshot.
func (h *HUD) Update() {
	if h == nil || h.session == nil {
		return
	}
	h.score = h.session.Frame().Score
	if provider, ok := h.session.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

// Draw paints the strip with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.strip == nil {
		h.strip = ebiten.NewImage(h.width, h.height)
	}
	h.strip.Fill(stripColor)

	face := basicfont.Face7x13
	baseline := h.height/2 + 4
	text.Draw(h.strip, ScoreLabel, face, hudPadding, baseline, labelColor)

	// Score column starts at 22% of the strip width.
	scoreX := h.width * 22 / 100
	text.Draw(h.strip, strconv.Itoa(h.score), face, scoreX, baseline, valueColor)

	infoX := h.width / 2
	y := hudPadding + lineStep
	for _, line := range StatusLines(h.snapshot) {
		if y > h.height-hudPadding {
			break
		}
		text.Draw(h.strip, line, face, infoX, y, infoColor)
		y += lineStep
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.strip, op)
}

const (
	hudPadding = 12
	lineStep   = 16
)
