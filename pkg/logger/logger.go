package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const loggerContextKey contextKey = "Logger"

// FromContext returns the logger stored by WithContext or the default one.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return l
	}
	return slog.Default()
}

func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, l)
}

// New builds the JSON process logger. Unknown levels fall back to info.
func New(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
