package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"snake/internal/core"
)

func TestDefaultConfigGeometry(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Cols() != 60 || cfg.Rows() != 40 {
		t.Fatalf("grid = %dx%d, want 60x40", cfg.Cols(), cfg.Rows())
	}
	if cfg.TickInterval != 30*time.Millisecond {
		t.Fatalf("tick = %v, want 30ms", cfg.TickInterval)
	}
}

func TestGridConfigExactSize(t *testing.T) {
	cfg := GridConfig(7, 5)
	if got := cfg.Size(); got != (core.Size{Cols: 7, Rows: 5}) {
		t.Fatalf("size = %+v, want 7x5", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("grid config invalid: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = 0
	cfg.FoodRetries = -1
	cfg.WidthPx = 40

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("error %v does not wrap ErrGridTooSmall", err)
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 3 {
		t.Fatalf("want three aggregated errors, got %v", err)
	}
}

func TestValidateStart(t *testing.T) {
	cases := map[string]struct {
		start   []core.Cell
		heading core.Direction
	}{
		"too short":       {cells(0, 0), core.Right},
		"outside":         {cells(0, 0, 0, 12), core.Right},
		"repeated":        {cells(1, 1, 2, 1, 1, 1), core.Down},
		"into neck":       {cells(1, 1, 2, 1), core.Right},
		"into neck wraps": {cells(0, 1, 9, 1), core.Left},
		"bad heading":     {cells(0, 1, 0, 0), core.Direction(9)},
	}
	for name, tc := range cases {
		cfg := GridConfig(10, 10)
		cfg.Start = tc.start
		cfg.Heading = tc.heading
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidStart) {
			t.Fatalf("%s: err = %v, want ErrInvalidStart", name, err)
		}
	}
}

func TestNewBoardRejectsInvalidConfig(t *testing.T) {
	cfg := GridConfig(2, 10)
	if _, err := NewBoard(cfg, zerolog.Nop()); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("NewBoard err = %v, want ErrGridTooSmall", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "400",
		"h":            "300",
		"tile":         "10",
		"scoreboard":   "50",
		"tick_ms":      "80",
		"seed":         "-12",
		"food_retries": "0",
		"heading":      "down",
	})
	if cfg.Cols() != 40 || cfg.Rows() != 25 {
		t.Fatalf("grid = %dx%d, want 40x25", cfg.Cols(), cfg.Rows())
	}
	if cfg.TickInterval != 80*time.Millisecond || cfg.Seed != -12 || cfg.FoodRetries != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Heading != core.Down {
		t.Fatalf("heading = %v, want down", cfg.Heading)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":       "wide",
		"tile":    "0",
		"tick_ms": "-5",
		"heading": "sideways",
	})
	def := DefaultConfig()
	if cfg.WidthPx != def.WidthPx || cfg.TileSize != def.TileSize || cfg.TickInterval != def.TickInterval || cfg.Heading != def.Heading {
		t.Fatalf("bad values overrode defaults: %+v", cfg)
	}
	if got := FromMap(nil); got.Cols() != def.Cols() {
		t.Fatal("nil map did not yield defaults")
	}
}
