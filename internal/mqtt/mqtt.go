// Package mqtt provides MQTT publishing with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/keegan/led-blinker/internal/blink"
)

// Topic is the MQTT topic for LED toggle events.
const Topic = "home/led-blinker/events"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "home/led-blinker/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends an LED toggle event to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(event blink.Event) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string        // e.g., "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string        // e.g., "SIGTERM", "SIGINT" (shutdown only)
	Config     *SystemConfig // Blink configuration (startup only)
	RawPayload []byte        // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool          // Whether the message should be retained by the broker
}

// SystemConfig carries the blink configuration announced at startup.
type SystemConfig struct {
	OnMs        int64  `json:"on_ms"`
	OffMs       int64  `json:"off_ms"`
	TickMs      int64  `json:"tick_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	Broker      string `json:"broker"`
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	LED LEDPayload `json:"led"`
}

// LEDPayload contains the LED toggle event details.
type LEDPayload struct {
	Timestamp string     `json:"timestamp"`
	Event     string     `json:"event"`
	State     string     `json:"state"`
	AtMillis  uint32     `json:"at_ms"`
	Counts    CountsInfo `json:"counts"`
}

// CountsInfo reports cumulative toggle counts.
type CountsInfo struct {
	On  int `json:"on"`
	Off int `json:"off"`
}

// FormatPayload creates the JSON payload for an LED toggle event.
func FormatPayload(event blink.Event) ([]byte, error) {
	payload := Payload{
		LED: LEDPayload{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     string(event.Type),
			State:     string(event.State),
			AtMillis:  event.AtMillis,
			Counts: CountsInfo{
				On:  event.Counts.On,
				Off: event.Counts.Off,
			},
		},
	}
	return json.Marshal(payload)
}

// SystemPayload represents the MQTT message payload for system events.
// Used for simple events that don't carry a full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string        `json:"timestamp"`
	Event     string        `json:"event"`
	Reason    string        `json:"reason,omitempty"`
	Config    *SystemConfig `json:"config,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
			Config:    event.Config,
		},
	}
	return json.Marshal(payload)
}
