//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"snake/internal/core"
	"snake/internal/render"
	"snake/internal/ui"
)

var keyDirections = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowUp:    core.Up,
	ebiten.KeyArrowDown:  core.Down,
	ebiten.KeyArrowLeft:  core.Left,
	ebiten.KeyArrowRight: core.Right,
	ebiten.KeyW:          core.Up,
	ebiten.KeyS:          core.Down,
	ebiten.KeyA:          core.Left,
	ebiten.KeyD:          core.Right,
}

// Game adapts a snake session to the ebiten.Game interface.
type Game struct {
	factory core.SessionFactory
	session core.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	tile  int
	strip int
	log   zerolog.Logger
}

// New starts the first session from factory. Cells are tile pixels wide and
// the score strip is strip pixels tall.
func New(factory core.SessionFactory, tile, strip int, interval time.Duration, log zerolog.Logger) (*Game, error) {
	session, err := factory()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	size := session.Size()
	g := &Game{
		factory: factory,
		session: session,
		painter: render.NewGridPainter(size),
		hud:     ui.NewHUD(session, size.Cols*tile, strip),
		overlay: ui.NewOverlay(tile),
		step:    core.NewFixedStep(interval),
		tile:    tile,
		strip:   strip,
		log:     log,
	}
	return g, nil
}

// Restart replaces the finished session with a fresh one.
func (g *Game) Restart() error {
	session, err := g.factory()
	if err != nil {
		return fmt.Errorf("restart session: %w", err)
	}
	if session.Size() != g.painter.Size() {
		g.painter = render.NewGridPainter(session.Size())
	}
	g.session = session
	g.hud.SetSession(session)
	g.step.Reset()
	g.log.Info().Msg("new game")
	return nil
}

// Update handles per-frame input and advances the session at the tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.session.Terminal() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := g.Restart(); err != nil {
				return err
			}
		}
	} else {
		for key, dir := range keyDirections {
			if inpututil.IsKeyJustPressed(key) {
				g.session.SetHeading(dir)
			}
		}
		if g.step.ShouldStep() {
			g.session.Tick()
		}
	}

	g.hud.Update()
	return nil
}

// Draw renders the board, the end banner and the score strip.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	f := g.session.Frame()
	g.painter.Draw(screen, f, g.tile)
	g.overlay.Draw(screen, f)
	g.hud.Draw(screen, f.Size.Rows*g.tile)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.Cols * g.tile, s.Rows*g.tile + g.strip
}
