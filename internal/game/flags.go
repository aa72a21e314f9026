package game

import "flag"

// Bind attaches every configuration field to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindGeometry(fs)
	c.BindPlay(fs)
}

// BindGeometry attaches the pixel layout flags used by windowed front-ends.
func (c *Config) BindGeometry(fs *flag.FlagSet) {
	fs.IntVar(&c.WidthPx, "w", c.WidthPx, "window width in pixels")
	fs.IntVar(&c.HeightPx, "h", c.HeightPx, "window height in pixels, score strip included")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "cell size in pixels")
	fs.IntVar(&c.ScoreBoardPx, "scoreboard", c.ScoreBoardPx, "score strip height in pixels")
}

// BindPlay attaches the pacing and randomness flags shared by all front-ends.
func (c *Config) BindPlay(fs *flag.FlagSet) {
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between moves")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 picks one from the clock)")
	fs.IntVar(&c.FoodRetries, "food-retries", c.FoodRetries, "random cherry draws before scanning for free cells")
	fs.TextVar(&c.Heading, "heading", c.Heading, "initial heading: up, down, left or right")
}
