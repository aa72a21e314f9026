package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/sanity-io/litter"

	"snake/internal/app"
	"snake/internal/soak"
)

func main() {
	opts := soak.DefaultOptions()
	flag.IntVar(&opts.Cols, "cols", opts.Cols, "board columns")
	flag.IntVar(&opts.Rows, "rows", opts.Rows, "board rows")
	flag.IntVar(&opts.Games, "games", opts.Games, "games to play")
	flag.IntVar(&opts.MaxTicks, "ticks", opts.MaxTicks, "tick limit per game")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of worker goroutines")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed of the first game; later games count up from it")
	flag.IntVar(&opts.TurnOdds, "turn-odds", opts.TurnOdds, "1-in-N chance of a random turn before each tick")
	dump := flag.Bool("dump", false, "dump the frames around every violation")
	verbose := flag.Bool("v", false, "print one line per game")
	logLevel := flag.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	flag.Parse()

	log, err := app.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Soaking %d games on %dx%d (%d workers, %d ticks max)\n", opts.Games, opts.Cols, opts.Rows, opts.Workers, opts.MaxTicks)
	start := time.Now()
	results := soak.Run(ctx, opts, log)
	elapsed := time.Since(start)

	for _, r := range results {
		if r.Violation != nil {
			cfmt.Printf("{{FAIL}}::lightRed|bold seed=%d tick=%d %v\n", r.Seed, r.Ticks, r.Violation)
			if *dump {
				fmt.Println(litter.Sdump(r.Before, r.After))
			}
			continue
		}
		if *verbose {
			cfmt.Printf("{{ok}}::green   seed=%d score=%d length=%d ticks=%d collided=%v\n", r.Seed, r.Score, r.Length, r.Ticks, r.Collided)
		}
	}

	sum := soak.Summarize(results)
	fmt.Printf("\n%d games in %s: %d collisions, max score %d, max length %d, mean score %.1f, mean ticks %.1f\n",
		sum.Games, elapsed.Round(time.Millisecond), sum.Collisions, sum.MaxScore, sum.MaxLength, sum.MeanScore, sum.MeanTicks)
	if sum.Failed > 0 {
		cfmt.Printf("{{%d games broke an invariant}}::lightRed|bold\n", sum.Failed)
		os.Exit(1)
	}
	cfmt.Println("{{all invariants held}}::lightGreen|bold")
}
