package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// options is the resolved daemon configuration after flags and the optional
// config file have been merged.
type options struct {
	on        time.Duration
	off       time.Duration
	tick      time.Duration
	heartbeat time.Duration
	broker    string
	httpAddr  string
	chip      string
	line      int
	console   bool
	duration  time.Duration
}

// fileConfig mirrors the flag set for deployments that prefer a config file.
// Durations are in milliseconds to match the controller's time base. Pointer
// fields distinguish absent from an explicit zero (on_ms: 0 is a valid
// setting that toggles on every tick).
type fileConfig struct {
	OnMs        *int64  `yaml:"on_ms"`
	OffMs       *int64  `yaml:"off_ms"`
	TickMs      *int64  `yaml:"tick_ms"`
	HeartbeatMs *int64  `yaml:"heartbeat_ms"`
	Broker      *string `yaml:"broker"`
	HTTP        *string `yaml:"http"`
	Chip        *string `yaml:"chip"`
	Line        *int    `yaml:"line"`
}

// loadConfigFile reads and parses a YAML config file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyFile copies file values over options for every flag the user did not
// set explicitly on the command line. Flags always win over the file.
func (o *options) applyFile(cfg *fileConfig, setFlags map[string]bool) {
	if cfg.OnMs != nil && !setFlags["on"] {
		o.on = time.Duration(*cfg.OnMs) * time.Millisecond
	}
	if cfg.OffMs != nil && !setFlags["off"] {
		o.off = time.Duration(*cfg.OffMs) * time.Millisecond
	}
	if cfg.TickMs != nil && !setFlags["tick"] {
		o.tick = time.Duration(*cfg.TickMs) * time.Millisecond
	}
	if cfg.HeartbeatMs != nil && !setFlags["heartbeat"] {
		o.heartbeat = time.Duration(*cfg.HeartbeatMs) * time.Millisecond
	}
	if cfg.Broker != nil && !setFlags["broker"] {
		o.broker = *cfg.Broker
	}
	if cfg.HTTP != nil && !setFlags["http"] {
		o.httpAddr = *cfg.HTTP
	}
	if cfg.Chip != nil && !setFlags["chip"] {
		o.chip = *cfg.Chip
	}
	if cfg.Line != nil && !setFlags["line"] {
		o.line = *cfg.Line
	}
}
