package lifecycle

import (
	"sync/atomic"
	"time"
)

var (
	draining  atomic.Bool
	startedAt atomic.Int64 // unix nanos; 0 until MarkStarted
)

// MarkStarted records the process start time used by Uptime.
func MarkStarted(t time.Time) {
	startedAt.Store(t.UnixNano())
}

// Uptime returns the time since MarkStarted, or zero if it was never called.
func Uptime() time.Duration {
	ns := startedAt.Load()
	if ns == 0 {
		return 0
	}
	return time.Since(time.Unix(0, ns))
}

// SetDraining sets the draining flag. Call when SIGTERM/SIGINT is received.
// The health handler answers 503 while it is set.
func SetDraining(v bool) {
	draining.Store(v)
}

// IsDraining reports whether the process is shutting down and should not receive new traffic.
func IsDraining() bool {
	return draining.Load()
}
