package model

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies an alert.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Alert is the demo event flowing through the hub. Handled is the cooperative
// short-circuit flag: a subscriber that fully services an alert sets it so
// later subscribers in the same publish chain can skip redundant work.
type Alert struct {
	ID       string
	Severity Severity
	Source   string
	Message  string
	Time     time.Time
	Handled  bool
}

// NewAlert builds an alert with a fresh ID and the current timestamp.
func NewAlert(sev Severity, source, msg string) Alert {
	return Alert{
		ID:       uuid.NewString(),
		Severity: sev,
		Source:   source,
		Message:  msg,
		Time:     time.Now(),
	}
}

// Heartbeat is a periodic liveness event.
type Heartbeat struct {
	Seq  int
	Time time.Time
}
