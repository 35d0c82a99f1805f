package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string        `json:"event,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	LED           string        `json:"led"`
	LastToggleMS  uint32        `json:"last_toggle_ms"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     string        `json:"start_time"`
	Timestamp     string        `json:"timestamp"`
	MQTT          MQTTStatus    `json:"mqtt"`
	Counts        CountsJSON    `json:"toggle_counts"`
	Hardware      *HardwareJSON `json:"hardware,omitempty"`
	Config        ConfigJSON    `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of toggle counts.
type CountsJSON struct {
	On  int `json:"on"`
	Off int `json:"off"`
}

// HardwareJSON is the JSON representation of the output hardware.
type HardwareJSON struct {
	Mode string `json:"mode"`
	Chip string `json:"chip"`
	Line int    `json:"line"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	OnMs        int64  `json:"on_ms"`
	OffMs       int64  `json:"off_ms"`
	TickMs      int64  `json:"tick_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	Broker      string `json:"broker"`
	HTTPAddr    string `json:"http_addr"`
}

func buildInner(snap Snapshot) StatusInner {
	led := string(snap.LED)
	if led == "" {
		led = "UNKNOWN"
	}

	inner := StatusInner{
		LED:           led,
		LastToggleMS:  snap.LastToggleMS,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			On:  snap.Counts.On,
			Off: snap.Counts.Off,
		},
		Config: ConfigJSON{
			OnMs:        snap.Config.OnMs,
			OffMs:       snap.Config.OffMs,
			TickMs:      snap.Config.TickMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			Broker:      snap.Config.Broker,
			HTTPAddr:    snap.Config.HTTPAddr,
		},
	}

	if snap.Hardware != nil {
		inner.Hardware = &HardwareJSON{
			Mode: snap.Hardware.Mode,
			Chip: snap.Hardware.Chip,
			Line: snap.Hardware.Line,
		}
	}

	return inner
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
