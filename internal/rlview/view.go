//go:build raylib

package rlview

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"snake/internal/core"
	"snake/internal/render"
	"snake/internal/ui"
)

var keyDirections = map[int32]core.Direction{
	rl.KeyUp:    core.Up,
	rl.KeyDown:  core.Down,
	rl.KeyLeft:  core.Left,
	rl.KeyRight: core.Right,
	rl.KeyW:     core.Up,
	rl.KeyS:     core.Down,
	rl.KeyA:     core.Left,
	rl.KeyD:     core.Right,
}

// View runs sessions in a raylib window.
type View struct {
	factory  core.SessionFactory
	session  core.Session
	tile     int32
	strip    int32
	interval time.Duration
	log      zerolog.Logger
}

// New prepares a view; the window opens in Run.
func New(factory core.SessionFactory, tile, strip int, interval time.Duration, log zerolog.Logger) *View {
	return &View{
		factory:  factory,
		tile:     int32(tile),
		strip:    int32(strip),
		interval: interval,
		log:      log,
	}
}

// Run opens the window and plays until it is closed.
func (v *View) Run() error {
	if err := v.restart(); err != nil {
		return err
	}
	size := v.session.Size()
	width := int32(size.Cols) * v.tile
	height := int32(size.Rows)*v.tile + v.strip

	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if v.session.Terminal() {
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				break
			}
			if rl.IsKeyPressed(rl.KeyR) {
				if err := v.restart(); err != nil {
					return err
				}
				lastUpdate = time.Now()
			}
		} else {
			for key, dir := range keyDirections {
				if rl.IsKeyPressed(key) {
					v.session.SetHeading(dir)
				}
			}
			if time.Since(lastUpdate) >= v.interval {
				v.session.Tick()
				lastUpdate = time.Now()
			}
		}
		v.draw()
	}
	return nil
}

func (v *View) restart() error {
	session, err := v.factory()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	v.session = session
	v.log.Debug().Msg("raylib session started")
	return nil
}

func (v *View) draw() {
	f := v.session.Frame()
	tile := v.tile
	half := tile / 2
	w := int32(f.Size.Cols) * tile
	h := int32(f.Size.Rows) * tile

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawRectangle(0, 0, w, h, toRL(render.BoardColor))

	for _, c := range f.Edible {
		rl.DrawRectangle(int32(c.Col)*tile, int32(c.Row)*tile, tile, tile, toRL(render.EdibleColor))
	}
	for i := len(f.Body) - 1; i >= 0; i-- {
		c := f.Body[i]
		col := render.SnakeColor
		if i == 0 {
			col = render.HeadColor
			if f.Terminal {
				col = render.DeadColor
			}
		}
		rl.DrawCircle(int32(c.Col)*tile+half, int32(c.Row)*tile+half, float32(half), toRL(col))
	}
	if f.HasFood {
		r := float32(tile) * 0.75
		rl.DrawCircle(int32(f.Food.Col)*tile+int32(r), int32(f.Food.Row)*tile+int32(r), r, toRL(render.CherryColor))
	}
	rl.DrawRectangleLinesEx(rl.Rectangle{Width: float32(w), Height: float32(h)}, 5, toRL(render.BorderColor))

	const fontSize = 20
	rl.DrawRectangle(0, h, w, v.strip, rl.NewColor(48, 39, 27, 255))
	y := h + (v.strip-fontSize)/2
	rl.DrawText(ui.ScoreLabel, 12, y, fontSize, rl.NewColor(255, 191, 128, 255))
	rl.DrawText(strconv.Itoa(f.Score), w*22/100, y, fontSize, toRL(render.BorderColor))

	if f.Terminal {
		rl.DrawRectangle(0, 0, w, h, rl.NewColor(0, 0, 0, 140))
		lines := ui.GameOverLines(f)
		ly := h/2 - int32(len(lines))*fontSize
		for _, line := range lines {
			lw := rl.MeasureText(line, fontSize)
			rl.DrawText(line, (w-lw)/2, ly, fontSize, rl.RayWhite)
			ly += fontSize + 8
		}
	}
	rl.EndDrawing()
}

func toRL(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }
