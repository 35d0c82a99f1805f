// Package led provides LED output control with hardware abstraction.
// The real implementation drives a GPIO line through the Linux GPIO
// character device. The fake implementation allows testing without
// hardware, and the console implementation renders the LED in a terminal.
package led

// Pin drives a single LED output.
type Pin interface {
	// Set drives the output high (true) or low (false).
	Set(on bool) error

	// Close releases the output resources.
	Close() error
}

// Default wiring (BCM numbering)
const (
	DefaultChip = "gpiochip0"
	DefaultLine = 17
)
