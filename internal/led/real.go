//go:build linux

package led

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealPin drives an LED on actual hardware using the Linux GPIO character device.
type RealPin struct {
	line *gpiocdev.Line
}

// NewRealPin requests the given line as an output, initially driven low.
func NewRealPin(chip string, line int) (*RealPin, error) {
	l, err := gpiocdev.RequestLine(chip, line, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request line %d on %s: %w", line, chip, err)
	}
	return &RealPin{line: l}, nil
}

// Set drives the output high or low.
func (p *RealPin) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := p.line.SetValue(v); err != nil {
		return fmt.Errorf("set line value: %w", err)
	}
	return nil
}

// Close releases the line.
// Reverts the line to an input first so the LED is not left driven
// after shutdown.
func (p *RealPin) Close() error {
	if p.line == nil {
		return nil
	}

	var errs []error
	if err := p.line.Reconfigure(gpiocdev.AsInput); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure line: %w", err))
	}
	if err := p.line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close line: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
