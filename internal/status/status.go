// Package status provides a thread-safe status tracker for the led-blinker daemon.
// It is read by HTTP handlers and the websocket hub.
package status

import (
	"sync"
	"time"

	"github.com/keegan/led-blinker/internal/blink"
)

// HardwareInfo describes the output the daemon is driving.
type HardwareInfo struct {
	Mode string // "gpio" or "console"
	Chip string
	Line int
}

// Config contains daemon configuration for display.
type Config struct {
	OnMs        int64
	OffMs       int64
	TickMs      int64
	HeartbeatMs int64
	Broker      string
	HTTPAddr    string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	LED           blink.State
	Counts        blink.ToggleCounts
	LastToggleMS  uint32
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Hardware      *HardwareInfo
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the LED state, toggle counts, and last toggle timestamp.
// Called from runLoop on every tick.
func (t *Tracker) Update(led blink.State, counts blink.ToggleCounts, lastToggleMS uint32) {
	t.mu.Lock()
	t.snap.LED = led
	t.snap.Counts = counts
	t.snap.LastToggleMS = lastToggleMS
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// SetHardware sets the output hardware info.
func (t *Tracker) SetHardware(info *HardwareInfo) {
	t.mu.Lock()
	t.snap.Hardware = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
