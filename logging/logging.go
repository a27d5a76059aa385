package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted in LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

var (
	// ErrUnknownLevel is returned by Validate for a level name it does not recognise.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat is returned by Validate for a format other than json or text.
	ErrUnknownFormat = errors.New("unknown log format")
)

// LoggerConfig selects the level and output format of a logger.
// Empty fields mean INFO and JSON.
type LoggerConfig struct {
	Level  string
	Format string
}

// Validate reports names NewLogger would silently replace with defaults.
func (c LoggerConfig) Validate() error {
	if _, ok := lookupLevel(c.Level); !ok && c.Level != "" {
		return fmt.Errorf("%w %q (want debug, info, warn or error)", ErrUnknownLevel, c.Level)
	}

	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, c.Format, FormatJSON, FormatText)
	}
}

// NewLogger creates a slog.Logger writing to w. Unknown levels fall back to INFO
// and unknown formats to JSON; call Validate first to reject them instead.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(config.Level)}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a case-insensitive level name to a slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	parsed, ok := lookupLevel(level)
	if !ok {
		return slog.LevelInfo
	}

	return parsed
}

func lookupLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
