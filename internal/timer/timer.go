// Package timer provides millisecond counters with hardware abstraction.
// The real implementation counts wall-clock milliseconds from a start point.
// The fake implementation lets tests script arbitrary time spans instantly.
package timer

// Timer supplies the millisecond counter that drives blink timing.
type Timer interface {
	// Millis returns the current counter value in milliseconds.
	// The value wraps around at 2^32.
	Millis() uint32
}
