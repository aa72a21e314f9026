package ui

import (
	"slices"
	"testing"

	"snake/internal/core"
)

func TestStatusLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Session", Params: []core.Parameter{
			{Key: "length", Label: "Length", Value: "6"},
			{Key: "eaten", Label: "Cherries", Value: "2"},
		}},
	}}

	got := StatusLines(snap, "eaten", "missing", "length")
	want := []string{"Cherries: 2", "Length: 6"}
	if !slices.Equal(got, want) {
		t.Fatalf("StatusLines = %q, want %q", got, want)
	}
	if row := StatusRow(got); row != "Cherries: 2  Length: 6" {
		t.Fatalf("StatusRow = %q", row)
	}
	if def := StatusLines(snap); !slices.Equal(def, []string{"Length: 6", "Cherries: 2"}) {
		t.Fatalf("default lines = %q", def)
	}
}

func TestGameOverLines(t *testing.T) {
	lines := GameOverLines(core.Frame{Score: 300, Terminal: true})
	if lines[0] != "GAME OVER" || lines[1] != "SCORE 300" {
		t.Fatalf("banner = %q", lines)
	}
}
