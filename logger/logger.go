// Package logger provides leveled logging for the page-management core.
// The library is embedded in a UI process, so output defaults to stderr and
// is configurable through PAGEDECK_LOG_LEVEL and PAGEDECK_LOG_OUTPUT.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents the logging level
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface for logging operations
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	SetLevel(level Level)
}

// LogConfig holds configuration for the logger
type LogConfig struct {
	// Output destination: "stderr" or "discard"
	Output string
	// Log level: "debug", "info", "warn", "error"
	Level string
}

// standardLogger implements the Logger interface using Go's standard log package
type standardLogger struct {
	logger *log.Logger
	level  Level
}

// NewLogger creates a new logger based on the provided configuration,
// falling back to environment variables and then to stderr at info level.
func NewLogger(config LogConfig) (Logger, error) {
	output := config.Output
	if output == "" {
		output = os.Getenv("PAGEDECK_LOG_OUTPUT")
	}
	if output == "" {
		output = "stderr"
	}

	var writer io.Writer
	switch output {
	case "stderr":
		writer = os.Stderr
	case "discard":
		writer = io.Discard
	default:
		return nil, fmt.Errorf("invalid log output: %s (expected 'stderr' or 'discard')", output)
	}

	levelStr := config.Level
	if levelStr == "" {
		levelStr = os.Getenv("PAGEDECK_LOG_LEVEL")
	}
	if levelStr == "" {
		levelStr = "info"
	}

	return &standardLogger{
		logger: log.New(writer, "", log.LstdFlags),
		level:  parseLevel(levelStr),
	}, nil
}

// NewNoOpLogger creates a logger that discards all output (useful for tests)
func NewNoOpLogger() Logger {
	return &standardLogger{
		logger: log.New(io.Discard, "", 0),
		level:  ErrorLevel + 1,
	}
}

// parseLevel converts a string to a Level
func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *standardLogger) SetLevel(level Level) {
	l.level = level
}

// Debug logs a debug message
func (l *standardLogger) Debug(format string, v ...any) {
	if l.level <= DebugLevel {
		l.log(DebugLevel, format, v...)
	}
}

// Info logs an info message
func (l *standardLogger) Info(format string, v ...any) {
	if l.level <= InfoLevel {
		l.log(InfoLevel, format, v...)
	}
}

// Warn logs a warning message
func (l *standardLogger) Warn(format string, v ...any) {
	if l.level <= WarnLevel {
		l.log(WarnLevel, format, v...)
	}
}

// Error logs an error message
func (l *standardLogger) Error(format string, v ...any) {
	if l.level <= ErrorLevel {
		l.log(ErrorLevel, format, v...)
	}
}

// log performs the actual logging
func (l *standardLogger) log(level Level, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	l.logger.Printf("[%s] %s", level.String(), message)
}
