package led

// FakePin is a test double that records output writes.
type FakePin struct {
	// State is the last value written.
	State bool

	// SetCalls counts Set invocations, including same-value writes.
	SetCalls int

	// History records every value written, in order.
	History []bool

	// SetError, if set, will be returned by Set()
	SetError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakePin creates a FakePin in the low state.
func NewFakePin() *FakePin {
	return &FakePin{}
}

// Set records the written value.
func (f *FakePin) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}

	f.State = on
	f.SetCalls++
	f.History = append(f.History, on)
	return nil
}

// Close marks the pin as closed.
func (f *FakePin) Close() error {
	f.Closed = true
	return nil
}

// Reset returns the pin to its initial state.
func (f *FakePin) Reset() {
	f.State = false
	f.SetCalls = 0
	f.History = nil
	f.SetError = nil
	f.Closed = false
}
