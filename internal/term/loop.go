package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake/internal/core"
	"snake/internal/ui"
)

// Runner drives sessions on a tcell screen: a ticker advances the snake and
// key events steer it.
type Runner struct {
	screen   tcell.Screen
	factory  core.SessionFactory
	interval time.Duration
	styles   Styles
	log      zerolog.Logger

	session core.Session
	games   int
}

// NewRunner prepares a runner. The screen must already be initialised; the
// caller keeps ownership of it.
func NewRunner(screen tcell.Screen, factory core.SessionFactory, interval time.Duration, log zerolog.Logger) *Runner {
	if interval <= 0 {
		interval = 30 * time.Millisecond
	}
	return &Runner{
		screen:   screen,
		factory:  factory,
		interval: interval,
		styles:   DefaultStyles(),
		log:      log,
	}
}

// Games returns how many sessions have been started.
func (r *Runner) Games() int { return r.games }

// Run plays until the user quits or ctx is cancelled and returns the last
// frame shown.
func (r *Runner) Run(ctx context.Context) (core.Frame, error) {
	if err := r.restart(); err != nil {
		return core.Frame{}, err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return r.session.Frame(), nil
		case <-ticker.C:
			if r.session.Terminal() {
				continue
			}
			r.session.Tick()
			r.draw()
		case ev := <-events:
			quit, err := r.handle(ev)
			if err != nil || quit {
				return r.session.Frame(), err
			}
		}
	}
}

// handle applies one screen event and reports whether the user asked to quit.
func (r *Runner) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		r.draw()
	case *tcell.EventKey:
		action, dir := Decode(ev, r.session.Terminal())
		switch action {
		case ActionQuit:
			return true, nil
		case ActionTurn:
			r.session.SetHeading(dir)
		case ActionRestart:
			if err := r.restart(); err != nil {
				return false, err
			}
			r.draw()
		}
	}
	return false, nil
}

func (r *Runner) restart() error {
	session, err := r.factory()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	r.session = session
	r.games++
	r.log.Debug().Int("game", r.games).Msg("terminal session started")
	return nil
}

func (r *Runner) draw() {
	var status []string
	if p, ok := r.session.(core.ParameterProvider); ok {
		status = ui.StatusLines(p.Parameters(), "length", "eaten")
	}
	Draw(r.screen, r.session.Frame(), r.styles, status)
	r.screen.Show()
}
