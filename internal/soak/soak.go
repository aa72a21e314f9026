// Package soak plays many headless games in parallel and audits every tick.
package soak

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"snake/internal/core"
	"snake/internal/game"
)

// Options controls a soak run.
type Options struct {
	Cols     int
	Rows     int
	Games    int
	MaxTicks int
	Workers  int
	Seed     int64
	// TurnOdds is the 1-in-N chance of a random turn request before a tick.
	TurnOdds int
}

// DefaultOptions returns a modest run suitable for a quick check.
func DefaultOptions() Options {
	return Options{
		Cols:     40,
		Rows:     30,
		Games:    200,
		MaxTicks: 5000,
		Workers:  runtime.NumCPU(),
		Seed:     1,
		TurnOdds: 4,
	}
}

// Result describes one finished game.
type Result struct {
	Seed      int64
	Score     int
	Eaten     int
	Length    int
	Ticks     int
	Collided  bool
	Violation error
	// Before and After hold the frames around the first violation.
	Before core.Frame
	After  core.Frame
}

// Run plays opts.Games games across opts.Workers goroutines and returns the
// results ordered by seed. Games not started before ctx is cancelled are
// skipped.
func Run(ctx context.Context, opts Options, log zerolog.Logger) []Result {
	workers := max(opts.Workers, 1)
	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- Play(opts, seed, log)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < opts.Games; i++ {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- opts.Seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

// Play runs a single game seeded with seed, steering at random.
func Play(opts Options, seed int64, log zerolog.Logger) Result {
	cfg := game.GridConfig(opts.Cols, opts.Rows)
	cfg.Seed = seed
	res := Result{Seed: seed}

	b, err := game.NewBoard(cfg, log)
	if err != nil {
		res.Violation = err
		return res
	}
	policy := core.NewRNG(seed ^ 0x5eed)
	odds := max(opts.TurnOdds, 1)

	for tick := 0; tick < opts.MaxTicks; tick++ {
		if policy.IntN(odds) == 0 {
			b.SetHeading(core.Direction(policy.IntN(4)))
		}
		before := b.Frame()
		move := b.Tick()
		after := b.Frame()
		if err := game.Audit(before, after, move); err != nil {
			res.Violation = err
			res.Before, res.After = before, after
			log.Error().Err(err).Int64("seed", seed).Int("tick", tick).Msg("invariant broken")
			break
		}
		if after.Terminal {
			res.Collided = true
			// One more tick must leave the terminal board untouched.
			idle := b.Tick()
			final := b.Frame()
			if err := game.Audit(after, final, idle); err != nil {
				res.Violation = err
				res.Before, res.After = after, final
			}
			break
		}
	}

	f := b.Frame()
	res.Score = f.Score
	res.Eaten = f.Eaten
	res.Length = len(f.Body)
	res.Ticks = f.Ticks
	return res
}

// Summary aggregates a set of results.
type Summary struct {
	Games      int
	Failed     int
	Collisions int
	MaxScore   int
	MaxLength  int
	MeanScore  float64
	MeanTicks  float64
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	var score, ticks int
	for _, r := range results {
		if r.Violation != nil {
			s.Failed++
		}
		if r.Collided {
			s.Collisions++
		}
		s.MaxScore = max(s.MaxScore, r.Score)
		s.MaxLength = max(s.MaxLength, r.Length)
		score += r.Score
		ticks += r.Ticks
	}
	s.MeanScore = float64(score) / float64(len(results))
	s.MeanTicks = float64(ticks) / float64(len(results))
	return s
}
