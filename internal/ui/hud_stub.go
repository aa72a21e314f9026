//go:build !ebiten

package ui

import "snake/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Session, int, int) *HUD { return nil }

// SetSession is a no-op in the headless build.
func (h *HUD) SetSession(core.Session) {}

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
