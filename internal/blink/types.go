// Package blink contains the pure blink-timing logic for the LED controller.
// This package has NO hardware dependencies (no GPIO, MQTT, OS, or
// time.Sleep). Time enters as an injected millisecond counter value.
package blink

import "time"

// State represents the logical state of the LED.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// EventType represents a state transition event.
type EventType string

const (
	EventLEDOn  EventType = "LED_ON"
	EventLEDOff EventType = "LED_OFF"
)

// Event represents a state transition to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	State     State
	// AtMillis is the controller clock value at which the toggle fired.
	AtMillis uint32
	Counts   ToggleCounts
}

// ToggleCounts tracks the number of transitions since startup (or Reset).
type ToggleCounts struct {
	On  int
	Off int
}

// StateFor returns the State for a boolean LED level.
func StateFor(on bool) State {
	if on {
		return StateOn
	}
	return StateOff
}

// EventTypeFor returns the event type for a transition to the given state.
func EventTypeFor(on bool) EventType {
	if on {
		return EventLEDOn
	}
	return EventLEDOff
}
