package ui

import (
	"fmt"
	"strings"

	"snake/internal/core"
)

// ScoreLabel heads the score strip.
const ScoreLabel = "SCORE"

// statusKeys lists the session parameters shown under the score.
var statusKeys = []string{"length", "eaten", "ticks", "tick", "seed"}

// StatusLines formats the selected parameters as "Label: value" lines.
// Unknown keys are skipped.
func StatusLines(snap core.ParameterSnapshot, keys ...string) []string {
	if len(keys) == 0 {
		keys = statusKeys
	}
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
	}
	return lines
}

// StatusRow joins status lines into one row for narrow displays.
func StatusRow(lines []string) string { return strings.Join(lines, "  ") }

// GameOverLines is the banner shown once the session has ended.
func GameOverLines(f core.Frame) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("%s %d", ScoreLabel, f.Score),
		"R: new game   Q/Esc: quit",
	}
}
