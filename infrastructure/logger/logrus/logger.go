// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Structured logging with level support behind the core Logger interface

package logrus

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	log *log.Logger
}

// NewLogger creates a logrus-backed logger writing to stdout.
// The level string follows logrus conventions (debug, info, warn, error);
// unknown values fall back to info.
func NewLogger(level string) *Logger {
	l := log.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{log: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Error(msg)
}
