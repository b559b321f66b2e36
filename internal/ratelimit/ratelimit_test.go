package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_AllowsUpToMax(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	for i := 1; i <= MaxPerWindow; i++ {
		assert.True(t, l.Allow(ctx, "1.2.3.4"), "request %d should be allowed", i)
	}

	assert.False(t, l.Allow(ctx, "1.2.3.4"), "request %d should be rejected", MaxPerWindow+1)
}

func TestMemoryLimiter_AddressesAreIndependent(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	for i := 0; i < MaxPerWindow+3; i++ {
		l.Allow(ctx, "1.2.3.4")
	}

	assert.False(t, l.Allow(ctx, "1.2.3.4"))
	assert.True(t, l.Allow(ctx, "5.6.7.8"), "other addresses must be unaffected")
}

func TestMemoryLimiter_WindowElapses(t *testing.T) {
	l := NewMemoryLimiter()
	l.window = 50 * time.Millisecond
	ctx := context.Background()

	for i := 0; i < MaxPerWindow+1; i++ {
		l.Allow(ctx, "1.2.3.4")
	}
	assert.False(t, l.Allow(ctx, "1.2.3.4"))

	time.Sleep(60 * time.Millisecond)

	assert.True(t, l.Allow(ctx, "1.2.3.4"), "elapsed window must reset the count")
}

func TestMemoryLimiter_SweepDropsExpiredEntries(t *testing.T) {
	l := NewMemoryLimiter()
	l.window = 10 * time.Millisecond
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		l.Allow(ctx, fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Len(t, l.entries, 20)

	time.Sleep(20 * time.Millisecond)
	l.Sweep()

	assert.Empty(t, l.entries, "entries past the window must be evicted")
}
