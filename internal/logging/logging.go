// Package logging sets up the application's structured logger.
//
// The UI owns the terminal, so records go to a rotated file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config describes where and how to log. An empty FilePath disables logging.
type Config struct {
	FilePath   string
	Level      slog.Level
	Format     Format
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu      sync.RWMutex
	current = discard()
	closer  io.Closer
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Init installs the global logger described by cfg, replacing (and closing)
// any previous one.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}

	if cfg.FilePath == "" {
		current = discard()
		return nil
	}

	w := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var h slog.Handler
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	current = slog.New(h)
	closer = w
	return nil
}

// Close flushes and releases the log file, falling back to discarding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	current = discard()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Get returns the global logger. It never returns nil.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// For returns the global logger tagged with a component name.
func For(component string) *slog.Logger {
	return Get().With("component", component)
}

// ParseLevel maps a config string to a level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// ParseFormat maps a config string to a format. Unknown values mean text.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// Timed logs how long the enclosing operation took. Use with defer:
//
//	defer logging.Timed(logger, "flush drafts")()
func Timed(l *slog.Logger, name string, args ...any) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		l.Debug(name, append(args, "duration", d.String(), "ms", d.Milliseconds())...)
	}
}
