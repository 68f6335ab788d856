// Package logging wraps log/slog for yank. Output goes to a rotated file
// because the terminal belongs to the UI; without a file path every call is
// discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of rotated files to keep
	MaxBackups int
}

var (
	mu      sync.RWMutex
	current *Logger
	closer  io.Closer

	noopLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. An empty FilePath disables logging.
func Init(config Config) error {
	if config.FilePath == "" {
		swap(noopLogger, nil)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	swap(&Logger{logger: slog.New(handler), enabled: true}, writer)
	return nil
}

func swap(l *Logger, c io.Closer) {
	mu.Lock()
	old := closer
	current, closer = l, c
	mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
}

// Get returns the global logger, or a noop logger before Init
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return noopLogger
	}
	return current
}

// Shutdown closes the log file and disables logging
func Shutdown() error {
	mu.Lock()
	c := closer
	current, closer = noopLogger, nil
	mu.Unlock()

	if c == nil {
		return nil
	}
	return c.Close()
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a new Logger with the given key-value pairs attached
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		logger:  l.logger.With(args...),
		enabled: l.enabled,
	}
}

// IsEnabled returns true if logging is enabled (not noop)
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message using the global logger
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message using the global logger
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a string to slog.Level (default info)
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat (default text)
func ParseFormat(format string) LogFormat {
	if strings.ToLower(format) == "json" {
		return FormatJSON
	}
	return FormatText
}
