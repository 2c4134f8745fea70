package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component names used as the "component" attribute
const (
	CompBoard  = "board"
	CompDrag   = "drag"
	CompRemote = "remote"
	CompDaemon = "daemon"
	CompTUI    = "tui"
	CompStore  = "store"
	CompLayout = "layout"
)

// Config holds logging configuration
type Config struct {
	// File is the log file path (e.g. ~/.quoteboard/logs/quoteboard.log)
	File string

	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	mu     sync.Mutex
	writer *lumberjack.Logger
)

// ParseLevel converts a config level name into a slog level. Unknown
// names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init initializes the logging system, writing text records to a rotating
// file. The terminal is never written to, so the TUI stays intact.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if cfg.File == "" {
		return fmt.Errorf("logging: no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return err
	}

	if writer != nil {
		_ = writer.Close()
	}
	writer = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags)

	return nil
}

// For returns the global logger tagged with a component name
func For(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return Logger.With("component", component)
}

// Close flushes and closes the log file
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if writer == nil {
		return nil
	}
	err := writer.Close()
	writer = nil
	return err
}
