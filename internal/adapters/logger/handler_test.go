package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinto/internal/adapters/logger"
)

func newHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info has no icon", level: slog.LevelInfo, want: "formatted Foo.php"},
		{name: "warn carries warning icon", level: slog.LevelWarn, want: "! formatted Foo.php"},
		{name: "error carries cross icon", level: slog.LevelError, want: "✗ formatted Foo.php"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newHandler(t, slog.LevelInfo)
			lg := slog.New(handler)
			lg.Log(context.Background(), tt.level, "formatted Foo.php")

			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler, _ := newHandler(t, slog.LevelWarn)
	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	handler, buf := newHandler(t, slog.LevelInfo)
	lg := slog.New(handler)
	lg.Info("cache invalidated", "root", "/srv/app", "entries", 3)

	assert.Equal(t, "cache invalidated root=/srv/app entries=3\n", buf.String())
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	handler, buf := newHandler(t, slog.LevelInfo)
	lg := slog.New(handler).With("boundary", "/srv/app")
	lg.Info("daemon serving")

	assert.Equal(t, "daemon serving boundary=/srv/app\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	handler, buf := newHandler(t, slog.LevelInfo)
	lg := slog.New(handler.WithGroup("pint"))
	lg.Info("check complete", "exit", 1)

	assert.Equal(t, "check complete pint.exit=1\n", buf.String())
}

func TestPrettyHandler_WithGroupEmpty(t *testing.T) {
	handler, buf := newHandler(t, slog.LevelInfo)
	lg := slog.New(handler.WithGroup(""))
	lg.Info("no group", "key", "value")

	assert.Equal(t, "no group key=value\n", buf.String())
}

func TestPrettyHandler_NilWriterDoesNotPanic(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelInfo})
	})
}
