package timer

// FakeTimer is a test double that returns scripted time.
// Tests advance it explicitly instead of sleeping, so simulated time spans
// of any length run instantly.
type FakeTimer struct {
	now uint32
}

// NewFakeTimer creates a fake timer starting at zero.
func NewFakeTimer() *FakeTimer {
	return &FakeTimer{}
}

// Millis returns the current scripted time.
func (f *FakeTimer) Millis() uint32 {
	return f.now
}

// Advance moves the scripted time forward.
// The counter wraps at 2^32 like the real one.
func (f *FakeTimer) Advance(ms uint32) {
	f.now += ms
}

// SetTime sets the scripted time to an absolute value.
// Useful for placing the counter just below the wrap point.
func (f *FakeTimer) SetTime(ms uint32) {
	f.now = ms
}

// Reset returns the scripted time to zero.
func (f *FakeTimer) Reset() {
	f.now = 0
}
