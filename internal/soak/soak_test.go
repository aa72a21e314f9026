package soak

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sanity-io/litter"
)

func smallOptions() Options {
	return Options{Cols: 12, Rows: 9, Games: 24, MaxTicks: 3000, Workers: 4, Seed: 100, TurnOdds: 3}
}

func TestRunAuditsEveryGame(t *testing.T) {
	results := Run(context.Background(), smallOptions(), zerolog.Nop())
	if len(results) != 24 {
		t.Fatalf("got %d results, want 24", len(results))
	}
	for i, r := range results {
		if r.Seed != 100+int64(i) {
			t.Fatalf("results not ordered by seed: %d at %d", r.Seed, i)
		}
		if r.Violation != nil {
			t.Fatalf("seed %d: %v\n%s", r.Seed, r.Violation, litter.Sdump(r.Before, r.After))
		}
		if r.Length != 2+2*r.Eaten || r.Score != 100*r.Eaten {
			t.Fatalf("seed %d: inconsistent accounting %s", r.Seed, litter.Sdump(r))
		}
	}

	sum := Summarize(results)
	if sum.Games != 24 || sum.Failed != 0 {
		t.Fatalf("summary %s", litter.Sdump(sum))
	}
	if sum.Collisions == 0 {
		t.Fatal("random steering never collided on a small board")
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	opts := smallOptions()
	a := Play(opts, 7, zerolog.Nop())
	b := Play(opts, 7, zerolog.Nop())
	if a.Ticks != b.Ticks || a.Score != b.Score || a.Length != b.Length {
		t.Fatalf("same seed diverged:\n%s\n%s", litter.Sdump(a), litter.Sdump(b))
	}
}

func TestPlayReportsBadConfig(t *testing.T) {
	opts := smallOptions()
	opts.Cols = 1
	if r := Play(opts, 1, zerolog.Nop()); r.Violation == nil {
		t.Fatal("invalid board accepted")
	}
}

func TestRunHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := Run(ctx, smallOptions(), zerolog.Nop())
	if len(results) != 0 {
		t.Fatalf("cancelled run played %d games", len(results))
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]Result{
		{Score: 100, Ticks: 10, Length: 4, Collided: true},
		{Score: 300, Ticks: 30, Length: 8, Violation: errors.New("boom")},
	})
	if sum.Failed != 1 || sum.Collisions != 1 || sum.MaxScore != 300 || sum.MaxLength != 8 {
		t.Fatalf("summary %s", litter.Sdump(sum))
	}
	if sum.MeanScore != 200 || sum.MeanTicks != 20 {
		t.Fatalf("means %v %v", sum.MeanScore, sum.MeanTicks)
	}
	if Summarize(nil).Games != 0 {
		t.Fatal("empty summary")
	}
}
