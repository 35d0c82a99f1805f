package led

import (
	"errors"
	"testing"
)

func TestFakePinSet(t *testing.T) {
	f := NewFakePin()

	if f.State {
		t.Error("new pin should start low")
	}

	if err := f.Set(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.State {
		t.Error("expected pin high after Set(true)")
	}

	if err := f.Set(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State {
		t.Error("expected pin low after Set(false)")
	}

	if f.SetCalls != 2 {
		t.Errorf("expected 2 set calls, got %d", f.SetCalls)
	}
}

func TestFakePinHistory(t *testing.T) {
	f := NewFakePin()

	f.Set(true)
	f.Set(true)
	f.Set(false)

	want := []bool{true, true, false}
	if len(f.History) != len(want) {
		t.Fatalf("expected %d history entries, got %d", len(want), len(f.History))
	}
	for i, v := range want {
		if f.History[i] != v {
			t.Errorf("history[%d]: expected %v, got %v", i, v, f.History[i])
		}
	}
}

func TestFakePinError(t *testing.T) {
	f := NewFakePin()
	f.SetError = errors.New("simulated error")

	err := f.Set(true)
	if err == nil {
		t.Fatal("expected error to be returned")
	}
	if err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}

	// Failed writes are not recorded
	if f.State || f.SetCalls != 0 || len(f.History) != 0 {
		t.Errorf("failed write should not be recorded: state=%v calls=%d history=%v",
			f.State, f.SetCalls, f.History)
	}
}

func TestFakePinClose(t *testing.T) {
	f := NewFakePin()

	if f.Closed {
		t.Error("should not be closed initially")
	}

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakePinReset(t *testing.T) {
	f := NewFakePin()
	f.Set(true)
	f.Close()

	f.Reset()

	if f.State || f.SetCalls != 0 || len(f.History) != 0 || f.Closed {
		t.Errorf("expected clean pin after reset: state=%v calls=%d history=%v closed=%v",
			f.State, f.SetCalls, f.History, f.Closed)
	}
}
