// Package logger adapts log/slog to the ports.Logger surface: a colored
// console handler for interactive runs, JSON for the daemon log.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/pinto/internal/core/ports"
)

// messager is the part of zerr's error type that yields a single link's
// message without the rest of the chain. Plain errors fall back to Error().
type messager interface {
	Message() string
}

// Logger implements ports.Logger.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	json   bool
	out    io.Writer
}

// New creates a Logger writing to stderr in console mode.
func New() ports.Logger {
	l := &Logger{out: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput redirects log output. A nil writer falls back to stderr. The
// current JSON mode is kept.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.out = w
	l.rebuild()
}

// SetJSON switches between JSON and console rendering, keeping the current
// output destination.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.json = enable
	l.rebuild()
}

// rebuild swaps the underlying slog handler. Callers hold mu, except New
// where the Logger is not yet shared.
func (l *Logger) rebuild() {
	w := l.out
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.json {
		l.logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(w, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain unrolled. In JSON mode the chain
// stays a single attribute for machine consumers.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.json {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(renderChain(err))
}

// renderChain formats an error as a headline with each wrapped cause
// indented beneath a "Caused by:" header, root cause last.
func renderChain(err error) string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, part := range parts[1:] {
				lines = append(lines, "       "+part)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, part := range parts[1:] {
			lines = append(lines, "      "+part)
		}
	}

	return strings.Join(lines, "\n")
}
