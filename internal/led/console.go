package led

import (
	"fmt"
	"io"
	"strings"
)

// Clock supplies timestamps for console output lines.
type Clock interface {
	Millis() uint32
}

// ConsolePin renders LED state changes as colored lines on a terminal.
// It implements the same Pin interface as the hardware pin, so the blink
// driver runs unmodified against a terminal.
type ConsolePin struct {
	w     io.Writer
	clock Clock
	state bool
	last  string
}

// NewConsolePin creates a console pin writing to w, timestamped by clock.
func NewConsolePin(w io.Writer, clock Clock) *ConsolePin {
	return &ConsolePin{w: w, clock: clock}
}

// Set records the state and writes a formatted line to the output.
func (p *ConsolePin) Set(on bool) error {
	p.state = on
	p.last = FormatOutput(p.clock.Millis(), on)

	if _, err := fmt.Fprintln(p.w, p.last); err != nil {
		return fmt.Errorf("write console output: %w", err)
	}
	return nil
}

// Close is a no-op for the console.
func (p *ConsolePin) Close() error {
	return nil
}

// State returns the last state written.
func (p *ConsolePin) State() bool {
	return p.state
}

// LastOutput returns the most recent formatted line.
func (p *ConsolePin) LastOutput() string {
	return p.last
}

// ANSI escape codes used for console rendering.
const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// FormatOutput renders a single timestamped state line.
// ON is drawn as a solid green block, OFF as a shaded red block.
func FormatOutput(timestampMS uint32, on bool) string {
	if on {
		return fmt.Sprintf("[%dms] LED: %s███ ON ███%s", timestampMS, ansiGreen, ansiReset)
	}
	return fmt.Sprintf("[%dms] LED: %s▓▓▓ OFF ▓▓▓%s", timestampMS, ansiRed, ansiReset)
}

// StripANSI removes ANSI escape sequences, leaving the plain text.
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}

	return b.String()
}
