package ensemblrest

import (
	"context"
	"sync"
	"time"
)

// DefaultRequestsPerSecond is the request budget advertised by Ensembl REST.
const DefaultRequestsPerSecond = 15

// RateState is a snapshot of a client's rate limiter.
type RateState struct {
	Limit     int       `json:"limit"`
	Count     int       `json:"count"`
	LastReset time.Time `json:"last_reset"`
}

// fixedWindow counts requests and, once the limit is reached, pauses until a
// full window has elapsed since the last reset. Bursts below the limit are
// never delayed.
type fixedWindow struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	count     int
	lastReset time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func newFixedWindow(limit int, now func() time.Time, sleep func(context.Context, time.Duration) error) *fixedWindow {
	if limit <= 0 {
		limit = DefaultRequestsPerSecond
	}
	if now == nil {
		now = time.Now
	}
	if sleep == nil {
		sleep = sleepContext
	}
	return &fixedWindow{
		limit:     limit,
		window:    time.Second,
		lastReset: now(),
		now:       now,
		sleep:     sleep,
	}
}

// Wait reserves a slot in the window, blocking first while the window is
// exhausted, and returns how long it slept. The mutex is held while sleeping
// so concurrent callers queue behind it. A cancelled wait reserves nothing.
func (w *fixedWindow) Wait(ctx context.Context) (time.Duration, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var waited time.Duration
	if w.count >= w.limit {
		if elapsed := w.now().Sub(w.lastReset); elapsed < w.window {
			waited = w.window - elapsed
			if err := w.sleep(ctx, waited); err != nil {
				return 0, err
			}
		}
		w.lastReset = w.now()
		w.count = 0
	}
	w.count++
	return waited, nil
}

func (w *fixedWindow) Snapshot() RateState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return RateState{Limit: w.limit, Count: w.count, LastReset: w.lastReset}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
