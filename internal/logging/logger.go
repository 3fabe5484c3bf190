// Package logging decouples the application from the underlying logging
// framework. Packages log through the Logger interface; logrus provides the
// implementation.
package logging

// Field is a key-value pair attached to a structured log message.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for constructing a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the structured logging interface used throughout the
// application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger
	// WithField returns a logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// Fatal logs at fatal level and exits.
	Fatal(msg string, fields ...Field)
	Fatalf(format string, args ...interface{})

	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

var defaultLogger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger = l
	}
}
