package app

import "time"

// InputLimiter drops input events that arrive too soon after the last
// accepted one. A zero delay accepts everything.
type InputLimiter struct {
	delay time.Duration
	last  time.Time
}

// NewInputLimiter creates a limiter with the given minimum spacing.
func NewInputLimiter(delay time.Duration) *InputLimiter {
	return &InputLimiter{delay: max(delay, 0)}
}

// Allow reports whether an event at now should be processed, and records
// it as the last accepted event if so.
func (l *InputLimiter) Allow(now time.Time) bool {
	if l.delay > 0 && !l.last.IsZero() && now.Sub(l.last) < l.delay {
		return false
	}
	l.last = now
	return true
}
