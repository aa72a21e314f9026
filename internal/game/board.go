package game

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"snake/internal/core"
)

// State is the session lifecycle. Terminal is absorbing.
type State uint8

const (
	Running State = iota
	Terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminal:
		return "terminal"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Board owns one game session: geometry, the snake, the cherry and the
// running/terminal flag. All methods are safe for concurrent use; input
// handlers may call SetHeading while another goroutine drives Tick.
type Board struct {
	mu sync.Mutex

	cfg  Config
	id   uuid.UUID
	cols int
	rows int

	snake   *Snake
	food    core.Cell
	hasFood bool
	edible  [9]core.Cell

	occupied *core.ByteGrid
	rng      *core.RNG
	state    State
	ticks    int

	log zerolog.Logger
}

// NewBoard validates cfg and starts a session with the configured snake and
// a freshly placed cherry. A zero Seed picks a time-based one.
func NewBoard(cfg Config, logger zerolog.Logger) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Start = slices.Clone(cfg.Start)

	id := uuid.New()
	b := &Board{
		cfg:      cfg,
		id:       id,
		cols:     cfg.Cols(),
		rows:     cfg.Rows(),
		snake:    NewSnake(cfg.Start, cfg.Heading),
		occupied: core.NewByteGrid(cfg.Cols(), cfg.Rows()),
		rng:      core.NewRNG(cfg.Seed),
		log:      logger.With().Str("session", id.String()).Logger(),
	}
	b.log.Info().
		Int("cols", b.cols).
		Int("rows", b.rows).
		Int64("seed", cfg.Seed).
		Dur("tick", cfg.TickInterval).
		Msg("session started")
	b.placeFood(b.snake.body)
	return b, nil
}

// ID returns the session identifier attached to every log line.
func (b *Board) ID() uuid.UUID { return b.id }

// Config returns the effective configuration, including the resolved seed.
func (b *Board) Config() Config {
	c := b.cfg
	c.Start = slices.Clone(c.Start)
	return c
}

// Size returns the board dimensions in cells.
func (b *Board) Size() core.Size { return core.Size{Cols: b.cols, Rows: b.rows} }

// Wrap maps any cell onto the board, re-entering from the opposite edge.
func (b *Board) Wrap(c core.Cell) core.Cell { return core.Wrap(c, b.cols, b.rows) }

// SetHeading forwards a turn to the snake. Reversals and turns after the
// session ended are ignored.
func (b *Board) SetHeading(d core.Direction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Terminal {
		return
	}
	if !b.snake.SetHeading(d) {
		b.log.Trace().Stringer("heading", b.snake.heading).Stringer("requested", d).Msg("turn ignored")
	}
}

// Tick advances the session by one move. Once the snake has collided with
// itself the board is terminal and Tick returns (false, false) without
// touching any state.
func (b *Board) Tick() core.MoveResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Terminal {
		return core.MoveResult{}
	}
	b.ticks++
	ok, ate := b.snake.Move(field{b})
	if !ok {
		b.state = Terminal
		b.log.Info().
			Int("score", b.score()).
			Int("eaten", b.snake.eaten).
			Int("length", b.snake.Len()).
			Int("ticks", b.ticks).
			Msg("snake collided with itself")
		return core.MoveResult{}
	}
	if ate {
		b.log.Debug().
			Int("eaten", b.snake.eaten).
			Int("length", b.snake.Len()).
			Msg("cherry eaten")
	}
	return core.MoveResult{OK: true, Ate: ate}
}

// PlaceFood moves the cherry to a random free cell, avoiding occupied.
func (b *Board) PlaceFood(occupied []core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.placeFood(occupied)
}

// Snake returns a copy of the occupied cells, head first.
func (b *Board) Snake() []core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snake.Body()
}

// Heading returns the snake's current heading.
func (b *Board) Heading() core.Direction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snake.heading
}

// Food returns the cherry cell and whether a cherry is on the board.
func (b *Board) Food() (core.Cell, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.food, b.hasFood
}

// EdibleRegion returns the 3×3 block around the cherry, centre first.
func (b *Board) EdibleRegion() []core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.edibleRegion()
}

// Edible reports whether landing on c eats the cherry.
func (b *Board) Edible(c core.Cell) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isEdible(c)
}

// Eaten returns the number of cherries eaten this session.
func (b *Board) Eaten() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snake.eaten
}

// Score returns the displayed score.
func (b *Board) Score() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score()
}

// Ticks returns the number of moves attempted.
func (b *Board) Ticks() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ticks
}

// State returns the session lifecycle state.
func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Terminal reports whether the session has ended.
func (b *Board) Terminal() bool { return b.State() == Terminal }

// Frame returns a consistent copy of everything needed to draw the board.
func (b *Board) Frame() core.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.Frame{
		Size:     core.Size{Cols: b.cols, Rows: b.rows},
		Body:     b.snake.Body(),
		Heading:  b.snake.heading,
		Food:     b.food,
		HasFood:  b.hasFood,
		Edible:   b.edibleRegion(),
		Eaten:    b.snake.eaten,
		Score:    b.score(),
		Ticks:    b.ticks,
		Terminal: b.state == Terminal,
	}
}

// Parameters describes the session for HUD display.
func (b *Board) Parameters() core.ParameterSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Board",
				Params: []core.Parameter{
					intParam("cols", "Columns", b.cols),
					intParam("rows", "Rows", b.rows),
					intParam("tile", "Tile", b.cfg.TileSize),
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(b.cfg.Seed, 10)},
					{Key: "tick", Label: "Tick", Type: core.ParamTypeDuration, Value: b.cfg.TickInterval.String()},
				},
			},
			{
				Name: "Session",
				Params: []core.Parameter{
					{Key: "id", Label: "Session", Type: core.ParamTypeString, Value: b.id.String()},
					{Key: "state", Label: "State", Type: core.ParamTypeString, Value: b.state.String()},
					intParam("score", "Score", b.score()),
					intParam("eaten", "Cherries", b.snake.eaten),
					intParam("length", "Length", b.snake.Len()),
					intParam("ticks", "Ticks", b.ticks),
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func (b *Board) score() int { return b.snake.eaten * b.cfg.PointsPerCherry }

func (b *Board) edibleRegion() []core.Cell {
	if !b.hasFood {
		return nil
	}
	return slices.Clone(b.edible[:])
}

func (b *Board) isEdible(c core.Cell) bool {
	return b.hasFood && slices.Contains(b.edible[:], c)
}

// field exposes the board to its snake without re-taking the lock held by Tick.
type field struct{ b *Board }

func (f field) Wrap(c core.Cell) core.Cell { return f.b.Wrap(c) }

func (f field) Edible(c core.Cell) bool { return f.b.isEdible(c) }

func (f field) PlaceFood(occupied []core.Cell) { f.b.placeFood(occupied) }

var _ core.Session = (*Board)(nil)
