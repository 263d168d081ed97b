package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(max int, window time.Duration) (*Limiter, *time.Time) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(max, window)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_DeniesUntilOldestAttemptLeavesWindow(t *testing.T) {
	l, _ := newTestLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("1.2.3.4").Allowed, "attempt %d", i+1)
	}

	info := l.Allow("1.2.3.4")
	assert.False(t, info.Allowed)
	assert.Equal(t, 5, info.Limit)
	assert.Equal(t, time.Minute, info.RetryAfter)
	assert.Equal(t, 60, info.RetryAfterSeconds())
}

func TestLimiter_SlidingWindow(t *testing.T) {
	l, now := newTestLimiter(5, time.Minute)
	start := *now

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("k").Allowed)
	}

	*now = start.Add(13 * time.Second)
	info := l.Allow("k")
	assert.False(t, info.Allowed)
	assert.Equal(t, 47*time.Second, info.RetryAfter)

	*now = start.Add(59 * time.Second)
	assert.False(t, l.Allow("k").Allowed)

	*now = start.Add(60 * time.Second)
	assert.True(t, l.Allow("k").Allowed)
}

func TestLimiter_SpacedAttemptsStayWithinLimit(t *testing.T) {
	l, now := newTestLimiter(5, time.Minute)
	start := *now

	allowed := 0
	var firstDenied time.Duration
	for i := 0; i < 12; i++ {
		*now = start.Add(time.Duration(i) * 5 * time.Second)
		info := l.Allow("k")
		if info.Allowed {
			allowed++
		} else if firstDenied == 0 {
			firstDenied = info.RetryAfter
		}
	}

	// attempts at 0..55s: only the first five fit in one minute
	assert.Equal(t, 5, allowed)
	assert.Equal(t, 35*time.Second, firstDenied)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	assert.True(t, l.Allow("a").Allowed)
	assert.False(t, l.Allow("a").Allowed)
	assert.True(t, l.Allow("b").Allowed)
}

func TestLimiter_Sweep(t *testing.T) {
	l, now := newTestLimiter(5, time.Minute)
	l.Allow("old")

	*now = now.Add(2 * time.Minute)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())
}

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(0, 0)
	assert.Equal(t, 5, l.maxAttempts)
	assert.Equal(t, time.Minute, l.window)
}

func TestInfo_RetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 0, Info{}.RetryAfterSeconds())
	assert.Equal(t, 1, Info{RetryAfter: 200 * time.Millisecond}.RetryAfterSeconds())
}
