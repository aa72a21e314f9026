package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"snake/internal/core"
)

// MinCells is the smallest playable board dimension in cells.
const MinCells = 3

var (
	// ErrGridTooSmall is reported when the derived board is below MinCells on an axis.
	ErrGridTooSmall = errors.New("board too small")
	// ErrInvalidStart is reported when the starting snake is malformed.
	ErrInvalidStart = errors.New("invalid starting snake")
)

// Config controls board geometry, pacing and the starting snake. Pixel sizes
// follow the classic window layout: the playing field sits above a score
// strip of ScoreBoardPx pixels and is carved into TileSize-pixel cells.
type Config struct {
	WidthPx      int
	HeightPx     int
	TileSize     int
	ScoreBoardPx int

	TickInterval time.Duration
	Seed         int64

	// FoodRetries bounds the random draws made before falling back to a
	// candidate list of free cells.
	FoodRetries     int
	PointsPerCherry int

	Start   []core.Cell
	Heading core.Direction
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WidthPx:         1200,
		HeightPx:        900,
		TileSize:        20,
		ScoreBoardPx:    100,
		TickInterval:    30 * time.Millisecond,
		Seed:            0,
		FoodRetries:     64,
		PointsPerCherry: 100,
		Start:           []core.Cell{{Col: 0, Row: 1}, {Col: 0, Row: 0}},
		Heading:         core.Right,
	}
}

// GridConfig returns the default configuration resized to exactly cols×rows
// cells with one pixel per cell and no score strip. Headless runs and the
// terminal front-end use it.
func GridConfig(cols, rows int) Config {
	c := DefaultConfig()
	c.TileSize = 1
	c.ScoreBoardPx = 0
	c.WidthPx = cols
	c.HeightPx = rows
	return c
}

// Cols returns the number of board columns.
func (c Config) Cols() int {
	if c.TileSize <= 0 {
		return 0
	}
	return c.WidthPx / c.TileSize
}

// Rows returns the number of board rows above the score strip.
func (c Config) Rows() int {
	if c.TileSize <= 0 {
		return 0
	}
	return (c.HeightPx - c.ScoreBoardPx) / c.TileSize
}

// Size returns the board dimensions in cells.
func (c Config) Size() core.Size { return core.Size{Cols: c.Cols(), Rows: c.Rows()} }

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var result *multierror.Error
	add := func(err error) { result = multierror.Append(result, err) }

	if c.WidthPx <= 0 || c.HeightPx <= 0 {
		add(fmt.Errorf("window must be positive, got %dx%d px", c.WidthPx, c.HeightPx))
	}
	if c.TileSize <= 0 {
		add(fmt.Errorf("tile size must be positive, got %d", c.TileSize))
	}
	if c.ScoreBoardPx < 0 {
		add(fmt.Errorf("score board height must not be negative, got %d", c.ScoreBoardPx))
	}
	if c.TickInterval <= 0 {
		add(fmt.Errorf("tick interval must be positive, got %v", c.TickInterval))
	}
	if c.FoodRetries < 0 {
		add(fmt.Errorf("food retries must not be negative, got %d", c.FoodRetries))
	}
	if c.PointsPerCherry < 0 {
		add(fmt.Errorf("points per cherry must not be negative, got %d", c.PointsPerCherry))
	}
	cols, rows := c.Cols(), c.Rows()
	if cols < MinCells || rows < MinCells {
		add(fmt.Errorf("%w: %dx%d cells, need at least %dx%d", ErrGridTooSmall, cols, rows, MinCells, MinCells))
	} else if err := c.validateStart(cols, rows); err != nil {
		add(err)
	}
	return result.ErrorOrNil()
}

func (c Config) validateStart(cols, rows int) error {
	if len(c.Start) < 2 {
		return fmt.Errorf("%w: need at least 2 segments, got %d", ErrInvalidStart, len(c.Start))
	}
	if !c.Heading.Valid() {
		return fmt.Errorf("%w: heading %v", ErrInvalidStart, c.Heading)
	}
	seen := make(map[core.Cell]bool, len(c.Start))
	for _, cell := range c.Start {
		if cell.Col < 0 || cell.Col >= cols || cell.Row < 0 || cell.Row >= rows {
			return fmt.Errorf("%w: segment %v outside %dx%d board", ErrInvalidStart, cell, cols, rows)
		}
		if seen[cell] {
			return fmt.Errorf("%w: segment %v repeated", ErrInvalidStart, cell)
		}
		seen[cell] = true
	}
	next := core.Wrap(c.Start[0].Add(c.Heading.Offset()), cols, rows)
	if next == c.Start[1] {
		return fmt.Errorf("%w: heading %v points into the second segment", ErrInvalidStart, c.Heading)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WidthPx = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.HeightPx = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["scoreboard"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ScoreBoardPx = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickInterval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["food_retries"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.FoodRetries = parsed
		}
	}
	if v, ok := cfg["heading"]; ok {
		if parsed, err := core.ParseDirection(v); err == nil {
			c.Heading = parsed
		}
	}
	return c
}
