package app

import (
	"flag"

	"snake/internal/game"
)

// Config represents the command-line parameters for the GUI front-end.
type Config struct {
	Game     game.Config
	TPS      int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Game: game.DefaultConfig(), TPS: 60, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Game.Bind(fs)
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame updates per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
}
