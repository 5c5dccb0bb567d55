package traffic

import (
	"sync"
	"time"
)

// Outcome classifies a request on the rate-limited calculator path.
type Outcome int

const (
	// Success is a calculation that produced a result.
	Success Outcome = iota
	// Rejected is a calculation refused for bad input (division by zero, bad operand).
	Rejected
	// Denied is a request turned away by the rate limiter (429).
	Denied
	numOutcomes
)

// retention bounds how long timestamps are kept regardless of the window queried.
const retention = 5 * time.Minute

var defaultTracker = NewTracker()

// Record records one outcome on the process-wide tracker.
func Record(o Outcome) {
	defaultTracker.Record(o)
}

// Count returns how many o outcomes the process-wide tracker saw within window.
func Count(o Outcome, window time.Duration) int {
	return defaultTracker.Count(o, window)
}

// Total returns all outcomes the process-wide tracker saw within window.
func Total(window time.Duration) int {
	return defaultTracker.Total(window)
}

// Reset clears the process-wide tracker. For tests only.
func Reset() {
	defaultTracker.Reset()
}

// Tracker keeps a sliding window of timestamps per outcome.
type Tracker struct {
	mu    sync.Mutex
	now   func() time.Time
	times [numOutcomes][]time.Time
}

// NewTracker returns an empty Tracker using the wall clock.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Record appends the current time to o's window.
func (t *Tracker) Record(o Outcome) {
	if o < 0 || o >= numOutcomes {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.times[o] = append(t.times[o], now)
	t.pruneLocked(now)
}

// Count returns the number of o outcomes within window ending now.
func (t *Tracker) Count(o Outcome, window time.Duration) int {
	if o < 0 || o >= numOutcomes {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return countSince(t.times[o], t.now().Add(-window))
}

// Total returns the number of outcomes of every kind within window ending now.
func (t *Tracker) Total(window time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	cutoff := t.now().Add(-window)
	n := 0
	for _, ts := range t.times {
		n += countSince(ts, cutoff)
	}
	return n
}

// Reset drops all recorded outcomes.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.times {
		t.times[i] = nil
	}
}

// countSince counts timestamps at or after cutoff. Slices are append-only in time order.
func countSince(ts []time.Time, cutoff time.Time) int {
	for i, v := range ts {
		if !v.Before(cutoff) {
			return len(ts) - i
		}
	}
	return 0
}

// pruneLocked drops timestamps older than retention. Caller holds t.mu.
func (t *Tracker) pruneLocked(now time.Time) {
	cutoff := now.Add(-retention)
	for o, ts := range t.times {
		i := 0
		for i < len(ts) && ts[i].Before(cutoff) {
			i++
		}
		if i > 0 {
			t.times[o] = append(ts[:0], ts[i:]...)
		}
	}
}
