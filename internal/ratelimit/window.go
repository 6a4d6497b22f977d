// Package ratelimit implements an in-process sliding-window limiter.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter allows at most max events per key inside any window-long span.
// State lives in memory and is not shared between processes.
type Limiter struct {
	windows sync.Map // map[string]*window
	max     int
	period  time.Duration
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type window struct {
	mu     sync.Mutex
	events []time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a limiter with background cleanup of idle keys.
// Call Stop() on shutdown.
func New(max int, period, cleanupInterval time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		max:    max,
		period: period,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	go l.cleanup(cleanupInterval)
	return l
}

// Stop terminates the background cleanup goroutine. It is safe to call more
// than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Allow records an event for key and reports whether it fits in the window.
// Rejected events are not recorded.
func (l *Limiter) Allow(key string) bool {
	val, _ := l.windows.LoadOrStore(key, &window{})
	w := val.(*window)

	now := l.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(now.Add(-l.period))
	if len(w.events) >= l.max {
		return false
	}
	w.events = append(w.events, now)
	return true
}

// RetryAfter returns how long key has to wait before the next event fits.
// Zero means an event would be allowed now.
func (l *Limiter) RetryAfter(key string) time.Duration {
	val, ok := l.windows.Load(key)
	if !ok {
		return 0
	}
	w := val.(*window)

	now := l.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(now.Add(-l.period))
	if len(w.events) < l.max {
		return 0
	}
	return w.events[0].Add(l.period).Sub(now)
}

// prune drops events at or before cutoff. Events are kept in arrival order.
func (w *window) prune(cutoff time.Time) {
	i := 0
	for i < len(w.events) && !w.events[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.events = append(w.events[:0], w.events[i:]...)
	}
}

func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

// sweep removes keys with no event inside the current window.
func (l *Limiter) sweep() {
	cutoff := l.now().Add(-l.period)
	l.windows.Range(func(key, value any) bool {
		w := value.(*window)
		w.mu.Lock()
		w.prune(cutoff)
		idle := len(w.events) == 0
		w.mu.Unlock()
		if idle {
			l.windows.Delete(key)
		}
		return true
	})
}
