package config

import "fmt"

// DemoConfig drives the synthetic alert publisher of the demo service.
type DemoConfig struct {
	// Publishers is the number of concurrent publisher goroutines.
	Publishers int `json:"publishers"`
	// Events is the number of alerts each publisher emits.
	Events int `json:"events"`
	// IntervalMS is the pause between two alerts of one publisher.
	IntervalMS int `json:"interval_ms"`
}

// SetDefaults applies sane defaults.
func (c *DemoConfig) SetDefaults() {
	if c.Publishers == 0 {
		c.Publishers = 2
	}
	if c.Events == 0 {
		c.Events = 20
	}
	if c.IntervalMS == 0 {
		c.IntervalMS = 50
	}
}

// Validate checks mandatory fields.
func (c DemoConfig) Validate() error {
	if c.Publishers < 1 {
		return fmt.Errorf("publishers must be positive, got %d", c.Publishers)
	}
	if c.Events < 1 {
		return fmt.Errorf("events must be positive, got %d", c.Events)
	}
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must not be negative, got %d", c.IntervalMS)
	}
	return nil
}
