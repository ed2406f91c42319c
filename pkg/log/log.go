package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger defines the logging interface used by the dictionary loader and the CLI.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
}

// DefaultLogger is a Logger backed by logrus.
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewDefaultLogger creates a logger writing text records at info level.
func NewDefaultLogger() *DefaultLogger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)

	return &DefaultLogger{
		entry: logrus.NewEntry(logger),
	}
}

// NewLoggerWithLevel creates a logger with the given level name.
// Unknown level names fall back to info.
func NewLoggerWithLevel(level string) *DefaultLogger {
	logger := NewDefaultLogger()
	logger.SetLevel(level)
	return logger
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *DefaultLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &DefaultLogger{
		entry: logrus.NewEntry(logger),
	}
}

// Debugf logs a formatted message at debug level.
func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Infof logs a formatted message at info level.
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warnf logs a formatted message at warning level.
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Errorf logs a formatted message at error level.
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithField returns a logger that adds key=value to every record.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	return &DefaultLogger{
		entry: l.entry.WithField(key, value),
	}
}

// SetLevel sets the log level. Unknown level names fall back to info.
func (l *DefaultLogger) SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.entry.Logger.SetLevel(lvl)
}

// SetOutput redirects log records to w.
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// GetLogrus returns the underlying logrus logger for advanced configuration.
func (l *DefaultLogger) GetLogrus() *logrus.Logger {
	return l.entry.Logger
}
