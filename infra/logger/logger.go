package logger

import corelogger "github.com/relaykit/relay/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// New returns the default (zerolog) Logger for the given component. The
// environment is detected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NewWithBackend selects the logging backend by name. Unknown backends fall
// back to zerolog.
func NewWithBackend(backend, component string) Logger {
	switch backend {
	case "logrus":
		return NewLogrusLogger(component)
	default:
		return NewZerologLogger(component)
	}
}
