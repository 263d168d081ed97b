// Package ratelimit counts attempts per client key over a sliding window.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

type Info struct {
	Allowed    bool
	Limit      int
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds up, so a caller told to wait 0.2s waits 1s.
func (i Info) RetryAfterSeconds() int {
	if i.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(i.RetryAfter.Seconds()))
}

// Limiter admits at most maxAttempts per key within any window. Denied
// attempts are not recorded, so a blocked client is released exactly one
// window after its oldest admitted attempt.
type Limiter struct {
	maxAttempts int
	window      time.Duration

	mu       sync.Mutex
	attempts map[string][]time.Time

	now func() time.Time
}

func NewLimiter(maxAttempts int, window time.Duration) *Limiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		maxAttempts: maxAttempts,
		window:      window,
		attempts:    make(map[string][]time.Time),
		now:         time.Now,
	}
}

func (l *Limiter) Allow(key string) Info {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.recentLocked(key, now)
	if len(recent) >= l.maxAttempts {
		l.attempts[key] = recent
		return Info{Allowed: false, Limit: l.maxAttempts, RetryAfter: recent[0].Add(l.window).Sub(now)}
	}

	l.attempts[key] = append(recent, now)
	return Info{Allowed: true, Limit: l.maxAttempts}
}

// recentLocked drops attempts that fell out of the window. Times are
// appended in order, so the survivors start at the first recent one.
func (l *Limiter) recentLocked(key string, now time.Time) []time.Time {
	times := l.attempts[key]
	i := 0
	for i < len(times) && now.Sub(times[i]) >= l.window {
		i++
	}
	return times[i:]
}

// Sweep forgets keys with no attempt inside the window and reports how many
// were dropped.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for k := range l.attempts {
		if len(l.recentLocked(k, now)) == 0 {
			delete(l.attempts, k)
			n++
		}
	}
	return n
}

func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}
