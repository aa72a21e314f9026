package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake/internal/core"
	"snake/internal/ui"
)

// Glyphs used on the board.
const (
	runeBoard  = ' '
	runeEdible = '+'
	runeCherry = '*'
	runeBody   = 'o'
	runeHead   = '@'
	runeDead   = 'X'
)

// Styles groups the tcell styles used by the renderer.
type Styles struct {
	Box    tcell.Style
	Board  tcell.Style
	Edible tcell.Style
	Cherry tcell.Style
	Snake  tcell.Style
	Dead   tcell.Style
	Status tcell.Style
	Banner tcell.Style
}

// DefaultStyles mirrors the GUI palette with terminal colours.
func DefaultStyles() Styles {
	board := tcell.StyleDefault.Background(tcell.NewRGBColor(105, 225, 65)).Foreground(tcell.ColorBlack)
	return Styles{
		Box:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(214, 218, 219)),
		Board:  board,
		Edible: board.Foreground(tcell.NewRGBColor(225, 65, 105)),
		Cherry: board.Foreground(tcell.NewRGBColor(225, 65, 105)).Bold(true),
		Snake:  board.Foreground(tcell.NewRGBColor(68, 105, 125)).Bold(true),
		Dead:   board.Foreground(tcell.ColorDarkRed).Bold(true),
		Status: tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 191, 128)),
		Banner: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	}
}

// FitGrid returns the largest board that fits a screen of w×h characters,
// leaving room for the border and the status line.
func FitGrid(w, h int) (cols, rows int) {
	return w - 2, h - 3
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// Draw renders f inside a border with cell (c, r) at screen position
// (c+1, r+1), the status row under the border and the end banner on top of
// the board once the session is over. status holds extra "Label: value"
// entries for the status row.
func Draw(s tcell.Screen, f core.Frame, st Styles, status []string) {
	s.Clear()
	cols, rows := f.Size.Cols, f.Size.Rows
	drawBox(s, 0, 0, cols+1, rows+1, st.Box)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			s.SetContent(col+1, row+1, runeBoard, nil, st.Board)
		}
	}
	put := func(c core.Cell, r rune, style tcell.Style) {
		s.SetContent(c.Col+1, c.Row+1, r, nil, style)
	}
	for _, c := range f.Edible {
		put(c, runeEdible, st.Edible)
	}
	if f.HasFood {
		put(f.Food, runeCherry, st.Cherry)
	}
	for i := len(f.Body) - 1; i > 0; i-- {
		put(f.Body[i], runeBody, st.Snake)
	}
	if len(f.Body) > 0 {
		if f.Terminal {
			put(f.Body[0], runeDead, st.Dead)
		} else {
			put(f.Body[0], runeHead, st.Snake)
		}
	}

	line := fmt.Sprintf("%s %d", ui.ScoreLabel, f.Score)
	if len(status) > 0 {
		line += "  " + ui.StatusRow(status)
	}
	drawText(s, 0, rows+2, st.Status, line)

	if f.Terminal {
		drawBanner(s, cols, rows, st.Banner, ui.GameOverLines(f))
	}
}

func drawBanner(s tcell.Screen, cols, rows int, style tcell.Style, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	// Centre on the board, clipped to its interior.
	x := 1 + max(0, (cols-width)/2)
	y := 1 + max(0, (rows-len(lines))/2)
	for i, l := range lines {
		if y+i > rows {
			break
		}
		pad := (width - len(l)) / 2
		drawText(s, x, y+i, style, fmt.Sprintf("%*s%-*s", pad, "", width-pad, l))
	}
}
