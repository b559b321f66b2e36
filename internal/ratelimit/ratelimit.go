// Package ratelimit bounds how many form submissions a single client
// address may make per fixed time window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Window parameters are deliberate constants, not runtime configuration.
const (
	Window       = 60 * time.Second
	MaxPerWindow = 5
)

// Limiter decides whether a request from the given client key may
// proceed. It is a policy gate: it always returns a decision and never
// an error.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type entry struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter is a per-process fixed-window counter. Counting is
// fixed-window by design: up to 2x MaxPerWindow requests can cross a
// window boundary within a short interval.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int

	sweepEvery time.Duration
}

// NewMemoryLimiter creates a limiter with the package window parameters.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries:    make(map[string]*entry),
		window:     Window,
		max:        MaxPerWindow,
		sweepEvery: 2 * time.Minute,
	}
}

// Allow records a hit for key and reports whether it stays within the
// window quota. A fresh or elapsed window resets the count to 1.
func (l *MemoryLimiter) Allow(ctx context.Context, key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	ent, ok := l.entries[key]
	if !ok || now.Sub(ent.windowStart) > l.window {
		l.entries[key] = &entry{count: 1, windowStart: now}
		return true
	}

	ent.count++
	return ent.count <= l.max
}

// Sweep drops entries whose window has elapsed, bounding memory for
// one-off clients.
func (l *MemoryLimiter) Sweep() {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, ent := range l.entries {
		if ent.windowStart.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}

// StartJanitor starts a goroutine that sweeps expired entries
// periodically until the context is cancelled.
func (l *MemoryLimiter) StartJanitor(ctx context.Context) {
	if l.sweepEvery <= 0 {
		return
	}

	t := time.NewTicker(l.sweepEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Sweep()
			}
		}
	}()
}
