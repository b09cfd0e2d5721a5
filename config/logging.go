package config

import "fmt"

// LoggingConfig selects the logging backend used by service components.
type LoggingConfig struct {
	// Backend is "zerolog" or "logrus".
	Backend string `json:"backend"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "zerolog"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	if c.Backend != "zerolog" && c.Backend != "logrus" {
		return fmt.Errorf("unknown logging backend %s", c.Backend)
	}
	return nil
}
