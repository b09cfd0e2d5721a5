package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements Logger using sirupsen/logrus, kept as an
// alternative backend for deployments standardized on logrus output.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a JSON-formatted logrus logger tagged with the
// provided component field.
func NewLogrusLogger(component string) Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.DebugLevel)
	return &LogrusLogger{entry: l.WithField("component", component)}
}

func (l *LogrusLogger) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *LogrusLogger) Debugw(msg string, fields map[string]any) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusLogger) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *LogrusLogger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}
