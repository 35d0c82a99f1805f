package timer

import "time"

// RealTimer counts wall-clock milliseconds since creation or the last Reset.
// It is backed by the monotonic clock, so the count never goes backwards.
type RealTimer struct {
	start time.Time
}

// NewRealTimer creates a timer whose count starts at zero.
func NewRealTimer() *RealTimer {
	return &RealTimer{start: time.Now()}
}

// Millis returns elapsed milliseconds since start.
// The conversion to uint32 wraps at 2^32, matching a 32-bit tick counter.
func (t *RealTimer) Millis() uint32 {
	return uint32(time.Since(t.start).Milliseconds())
}

// Reset restarts the count from zero.
func (t *RealTimer) Reset() {
	t.start = time.Now()
}
