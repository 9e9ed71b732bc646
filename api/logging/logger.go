package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs a JSON slog handler on stderr as the default logger.
// LOG_LEVEL=debug enables debug output.
func Init() {
	slog.SetDefault(New(os.Stderr, os.Getenv("LOG_LEVEL")))
}

// New builds a JSON logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps debug, warn and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
