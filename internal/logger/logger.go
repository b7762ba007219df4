// Package logger provides process-wide structured logging for the server.
// Records go to stderr by default since stdout carries the MCP stdio stream.
// Text output uses tint; JSON output uses the slog JSON handler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Format selects the log record encoding.
type Format string

// Available formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	mu      sync.RWMutex
	verbose bool
	level   = slog.LevelInfo
	format  = FormatText
	output  io.Writer = os.Stderr
	base    = build()
)

// build creates the slog logger for the current settings (caller must hold lock).
func build() *slog.Logger {
	lvl := level
	if verbose {
		lvl = slog.LevelDebug
	}

	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: lvl}))
	}

	return slog.New(tint.NewHandler(output, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(output),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// SetFormat switches between text and JSON records.
// Unknown formats fall back to text.
func SetFormat(f Format) {
	mu.Lock()
	defer mu.Unlock()
	if f != FormatJSON {
		f = FormatText
	}
	format = f
	base = build()
}

// SetLevel sets the minimum level logged when not verbose.
func SetLevel(l slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	base = build()
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
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

// L returns the current structured logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug logs a formatted message at debug level.
func Debug(msg string, args ...any) {
	L().Debug(fmt.Sprintf(msg, args...))
}

// Section logs a debug marker for the start of a pipeline stage.
func Section(name string) {
	L().Debug("=== " + name + " ===")
}

// Info logs a formatted message at info level.
func Info(msg string, args ...any) {
	L().Info(fmt.Sprintf(msg, args...))
}

// Warn logs a formatted message at warn level.
func Warn(msg string, args ...any) {
	L().Warn(fmt.Sprintf(msg, args...))
}

// Error logs a formatted message at error level.
func Error(msg string, args ...any) {
	L().Error(fmt.Sprintf(msg, args...))
}
