package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake/internal/core"
)

// Action is what a key press asks the terminal UI to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionTurn
	ActionRestart
	ActionQuit
)

var key2Dir = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.Up,
	tcell.KeyDown:  core.Down,
	tcell.KeyLeft:  core.Left,
	tcell.KeyRight: core.Right,
}

var rune2Dir = map[rune]core.Direction{
	'w': core.Up,
	's': core.Down,
	'a': core.Left,
	'd': core.Right,
	'k': core.Up,
	'j': core.Down,
	'h': core.Left,
	'l': core.Right,
}

// Decode maps a key event to an action. Turns are only reported while the
// session runs; restart and Enter-to-quit only once it has ended.
func Decode(ev *tcell.EventKey, over bool) (Action, core.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyEnter:
		if over {
			return ActionQuit, 0
		}
		return ActionNone, 0
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		switch {
		case r == 'q':
			return ActionQuit, 0
		case r == 'r' && over:
			return ActionRestart, 0
		}
		if dir, ok := rune2Dir[r]; ok && !over {
			return ActionTurn, dir
		}
		return ActionNone, 0
	}
	if dir, ok := key2Dir[ev.Key()]; ok && !over {
		return ActionTurn, dir
	}
	return ActionNone, 0
}
