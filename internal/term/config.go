package term

import (
	"flag"

	"snake/internal/game"
)

// Config represents the command-line parameters for the terminal front-end.
// A zero Cols or Rows fits the board to the screen.
type Config struct {
	Game     game.Config
	Cols     int
	Rows     int
	LogLevel string
	LogFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Game: game.GridConfig(0, 0), LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Game.BindPlay(fs)
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns (0 fits the terminal)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows (0 fits the terminal)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file (logs are dropped when empty)")
}

// GameConfig returns the board configuration for a screen of w×h characters.
func (c *Config) GameConfig(w, h int) game.Config {
	cols, rows := FitGrid(w, h)
	if c.Cols > 0 {
		cols = min(c.Cols, cols)
	}
	if c.Rows > 0 {
		rows = min(c.Rows, rows)
	}
	g := game.GridConfig(cols, rows)
	g.TickInterval = c.Game.TickInterval
	g.Seed = c.Game.Seed
	g.FoodRetries = c.Game.FoodRetries
	g.PointsPerCherry = c.Game.PointsPerCherry
	g.Heading = c.Game.Heading
	return g
}
