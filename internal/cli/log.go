package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/config"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// sessionLog is a logger backed by a file for the lifetime of one playground run.
type sessionLog struct {
	*log.Logger
	path string
	file *os.File
}

// openSessionLog opens (appending) the log file at path, creating parent
// directories as needed. An empty path selects the default state directory.
func openSessionLog(path string, level log.Level) (*sessionLog, error) {
	if path == "" {
		dir, err := config.StateDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		path = filepath.Join(dir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &sessionLog{Logger: newLogger(f, level), path: path, file: f}, nil
}

// Close closes the underlying file.
func (s *sessionLog) Close() error {
	return s.file.Close()
}

// parseLevel maps a config level name to a log level, defaulting to info.
func parseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// logHooks reports canvas events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnColorChanged(color string, delivered bool) {
	h.logger.Debug("color changed", "color", color, "delivered", delivered)
}

func (h logHooks) OnPercentageChanged(p float64) {
	h.logger.Debug("percentage changed", "percentage", p)
}

func (h logHooks) OnLineWidthChanged(width float64, delivered bool) {
	h.logger.Debug("line width changed", "width", width, "delivered", delivered)
}

func (h logHooks) OnWritableRegistered(replaced bool) {
	h.logger.Debug("writable registered", "replaced", replaced)
}
