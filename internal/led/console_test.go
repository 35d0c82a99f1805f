package led

import (
	"bytes"
	"strings"
	"testing"
)

// fixedClock returns the same millisecond value on every call.
type fixedClock uint32

func (c fixedClock) Millis() uint32 {
	return uint32(c)
}

func TestConsolePinInitialStateOff(t *testing.T) {
	p := NewConsolePin(&bytes.Buffer{}, fixedClock(0))
	if p.State() {
		t.Error("new console pin should start off")
	}
	if p.LastOutput() != "" {
		t.Errorf("expected no output before first Set, got %q", p.LastOutput())
	}
}

func TestConsolePinStateTransitions(t *testing.T) {
	p := NewConsolePin(&bytes.Buffer{}, fixedClock(0))

	p.Set(true)
	if !p.State() {
		t.Error("expected on after Set(true)")
	}

	p.Set(false)
	if p.State() {
		t.Error("expected off after Set(false)")
	}

	// Same-value write keeps the state
	p.Set(true)
	p.Set(true)
	if !p.State() {
		t.Error("expected on after repeated Set(true)")
	}
}

func TestConsolePinWritesLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePin(&buf, fixedClock(1234))

	if err := p.Set(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if out == "" {
		t.Fatal("expected output to be written")
	}
	if !strings.Contains(out, "[1234ms]") {
		t.Errorf("expected timestamp in output, got %q", out)
	}
	if !strings.Contains(out, "LED:") {
		t.Errorf("expected LED label in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("expected newline-terminated output, got %q", out)
	}
	if p.LastOutput() != strings.TrimSuffix(out, "\n") {
		t.Errorf("LastOutput should match written line: %q vs %q", p.LastOutput(), out)
	}
}

func TestConsolePinColors(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePin(&buf, fixedClock(0))

	p.Set(true)
	on := p.LastOutput()
	if !strings.Contains(on, "\033[32m") {
		t.Errorf("expected green code in ON output, got %q", on)
	}
	if !strings.Contains(on, "\033[0m") {
		t.Errorf("expected reset code in ON output, got %q", on)
	}

	p.Set(false)
	off := p.LastOutput()
	if !strings.Contains(off, "\033[31m") {
		t.Errorf("expected red code in OFF output, got %q", off)
	}
	if !strings.Contains(off, "\033[0m") {
		t.Errorf("expected reset code in OFF output, got %q", off)
	}
}

func TestFormatOutputOn(t *testing.T) {
	out := FormatOutput(1234, true)
	if !strings.Contains(out, "1234ms") {
		t.Errorf("expected timestamp, got %q", out)
	}
	if !strings.Contains(StripANSI(out), "ON") {
		t.Errorf("expected ON marker, got %q", out)
	}
}

func TestFormatOutputOff(t *testing.T) {
	out := FormatOutput(5678, false)
	if !strings.Contains(out, "5678ms") {
		t.Errorf("expected timestamp, got %q", out)
	}
	if !strings.Contains(StripANSI(out), "OFF") {
		t.Errorf("expected OFF marker, got %q", out)
	}
}

func TestFormatOutputZeroTimestamp(t *testing.T) {
	out := FormatOutput(0, true)
	if !strings.Contains(out, "[0ms]") {
		t.Errorf("expected zero timestamp, got %q", out)
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"color codes", "\033[32mGREEN TEXT\033[0m", "GREEN TEXT"},
		{"plain text", "Plain text without codes", "Plain text without codes"},
		{"multiple codes", "\033[31mRED\033[0m and \033[32mGREEN\033[0m", "RED and GREEN"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConsolePinOutputChangesOverTime(t *testing.T) {
	var buf bytes.Buffer
	clock := &steppingClock{}
	p := NewConsolePin(&buf, clock)

	p.Set(true)
	first := p.LastOutput()

	clock.now += 20
	p.Set(false)
	second := p.LastOutput()

	if first == "" || second == "" {
		t.Fatal("expected both outputs to be generated")
	}
	if first == second {
		t.Errorf("expected outputs to differ, both were %q", first)
	}
}

// steppingClock lets a test move console timestamps forward.
type steppingClock struct {
	now uint32
}

func (c *steppingClock) Millis() uint32 {
	return c.now
}
