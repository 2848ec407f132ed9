// Package log is a small level-filtered logger for debug output.
// The viewer owns the terminal, so output goes to a file or nowhere.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  atomic.Int64
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func init() {
	level.Store(int64(LevelInfo))
}

// Init directs log output to w at the given level. A nil writer discards
// everything.
func Init(w io.Writer, l slog.Level) {
	if w == nil {
		w = io.Discard
	}
	SetLevel(l)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	mu.Lock()
	logger = slog.New(h)
	mu.Unlock()
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	emit(LevelDebug, format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	emit(LevelInfo, format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	emit(LevelWarn, format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit(LevelError, format, args)
}

func emit(l slog.Level, format string, args []any) {
	if l < LevelError && GetLevel() > l {
		return
	}
	mu.RLock()
	lg := logger
	mu.RUnlock()
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}
