// Package testutil provides shared test helpers for the delivery tracking service.
package testutil

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// FakeClock provides deterministic time for testing.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock creates a FakeClock set to the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// ScriptedRandom replays queued values. Once a queue is drained IntN returns 0
// and Float64 returns 0, which never triggers a probabilistic transition.
type ScriptedRandom struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
}

// NewScriptedRandom creates an empty ScriptedRandom.
func NewScriptedRandom() *ScriptedRandom {
	return &ScriptedRandom{}
}

// QueueInts appends values returned by IntN (reduced modulo n).
func (r *ScriptedRandom) QueueInts(values ...int) *ScriptedRandom {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = append(r.ints, values...)
	return r
}

// QueueFloats appends values returned by Float64.
func (r *ScriptedRandom) QueueFloats(values ...float64) *ScriptedRandom {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.floats = append(r.floats, values...)
	return r
}

func (r *ScriptedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *ScriptedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// AlwaysRandom returns the same value for every Float64 call and 0 for IntN.
type AlwaysRandom float64

func (AlwaysRandom) IntN(int) int { return 0 }

func (a AlwaysRandom) Float64() float64 { return float64(a) }

// DiscardLogger returns a slog.Logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
