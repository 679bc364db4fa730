// Package log builds the [slog.Handler] used by the CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w from level
// and format names.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		return newCharmHandler(w, level, charmlog.TextFormatter), nil
	case LogfmtFormat:
		return newCharmHandler(w, level, charmlog.LogfmtFormatter), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, logFormat)
	}
}

func newCharmHandler(w io.Writer, level slog.Level, f charmlog.Formatter) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       f,
		ReportTimestamp: true,
	})
}

// GetLevel parses a level name. Names from other tools (trace, fatal,
// panic) map to the closest slog level.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}
}
