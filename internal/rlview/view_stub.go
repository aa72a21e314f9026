//go:build !raylib

package rlview

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"snake/internal/core"
)

// View is a placeholder used when the raylib build tag is absent.
type View struct{}

// New returns a placeholder view.
func New(core.SessionFactory, int, int, time.Duration, zerolog.Logger) *View { return &View{} }

// Run reports that the raylib build tag is required.
func (v *View) Run() error {
	return fmt.Errorf("rlview.View.Run requires building with the 'raylib' tag")
}
