package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(30 * time.Millisecond)
	fs.now = clock.now

	if fs.ShouldStep() {
		t.Fatal("first call should only start the clock")
	}
	clock.advance(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before a full interval elapsed")
	}
	clock.advance(10 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after 30ms")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice for one interval")
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != maxBacklog {
		t.Fatalf("replayed %d ticks after a stall, want %d", steps, maxBacklog)
	}
}

func TestFixedStepDefaultsInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() <= 0 {
		t.Fatalf("interval = %v, want positive default", fs.Interval())
	}
}

func TestRNGDeterministicRange(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		x, y := a.Range(1, 8), b.Range(1, 8)
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x < 1 || x > 8 {
			t.Fatalf("Range(1,8) = %d", x)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}
