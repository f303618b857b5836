// Package logging provides the structured slog logger used across tabpanel.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is a structured logger for tabpanel components.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to w, tagged with component.
func New(component string, level slog.Level, w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(
		slog.String("component", component),
		slog.String("system", "tabpanel"),
	)
	return &Logger{Logger: logger}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *Logger) *Logger {
	if l == nil || l.Logger == nil {
		return Discard()
	}
	return l
}

// ParseLevel maps debug|info|warn|error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// WithTab returns a logger with tab-specific fields.
func (l *Logger) WithTab(key string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("tab", key))}
}

// WithRegion returns a logger tagged with the panel region it serves.
func (l *Logger) WithRegion(region string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("region", region))}
}

// WithPlacement returns a logger tagged with the bar placement.
func (l *Logger) WithPlacement(placement fmt.Stringer) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("placement", placement.String()))}
}

// SyncCoalesced logs sync messages discarded in favor of the newest one.
func (l *Logger) SyncCoalesced(queue string, dropped int, kept string) {
	l.Debug("sync messages coalesced",
		slog.String("queue", queue),
		slog.Int("dropped", dropped),
		slog.String("kept", kept),
	)
}

// SyncUnknownKey logs a sync message naming a key the receiver does not hold.
func (l *Logger) SyncUnknownKey(queue, key string) {
	l.Debug("sync message for unknown key",
		slog.String("queue", queue),
		slog.String("tab", key),
	)
}

// FocusMoved logs a focus transition between panel regions.
func (l *Logger) FocusMoved(to string, cause string) {
	l.Debug("focus moved",
		slog.String("to", to),
		slog.String("cause", cause),
	)
}
