package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger from level/format settings.
// Defaults to JSON on stdout at info level when fields are empty.
func New(level, format string) *zerolog.Logger {
	lvl := zerolog.InfoLevel
	if trimmed := strings.ToLower(strings.TrimSpace(level)); trimmed != "" {
		if parsed, err := zerolog.ParseLevel(trimmed); err == nil {
			lvl = parsed
		}
	}

	output := io.Writer(os.Stdout)
	if strings.ToLower(strings.TrimSpace(format)) == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	base := zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "travelease").
		Logger()

	return &base
}
