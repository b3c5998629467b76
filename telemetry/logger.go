// Package telemetry provides the structured, leveled logger used across the
// solver, API, and storage layers.
package telemetry

import (
	"fmt"
	"log"
	"os"
)

// Logger is a leveled logger over stdlib log, annotated with key-value pairs.
type Logger struct {
	*log.Logger
	enabled bool
}

// New returns a Logger writing to stdout with the vrpkit prefix.
func New() *Logger {
	return &Logger{
		Logger:  log.New(os.Stdout, "[vrpkit] ", log.LstdFlags),
		enabled: true,
	}
}

// NewNoop returns a Logger that discards every call, for tests that need a
// Logger value but assert nothing about its output.
func NewNoop() *Logger {
	return &Logger{
		Logger:  log.New(os.Stdout, "", 0),
		enabled: false,
	}
}

// Debug logs at debug level with key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.enabled {
		return
	}
	l.logWithKV("DEBUG", msg, keysAndValues...)
}

// Info logs at info level with key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	if !l.enabled {
		return
	}
	l.logWithKV("INFO", msg, keysAndValues...)
}

// Warn logs at warn level with key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	if !l.enabled {
		return
	}
	l.logWithKV("WARN", msg, keysAndValues...)
}

// Error logs at error level with key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	if !l.enabled {
		return
	}
	l.logWithKV("ERROR", msg, keysAndValues...)
}

func (l *Logger) logWithKV(level, msg string, keysAndValues ...interface{}) {
	output := level + " " + msg

	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			output += " " + fmt.Sprint(keysAndValues[i]) + "=" + formatValue(keysAndValues[i+1])
		}
	}

	l.Println(output)
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int, int32, int64, float32, float64:
		return fmt.Sprint(val)
	case error:
		return val.Error()
	default:
		return fmt.Sprint(val)
	}
}
