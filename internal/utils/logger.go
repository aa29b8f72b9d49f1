package utils

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// SetLogger swaps the process logger used by LogEvent.
func SetLogger(l *zerolog.Logger) {
	if l == nil {
		return
	}
	loggerMu.Lock()
	logger = *l
	loggerMu.Unlock()
}

// LogEvent emits a standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()

	l.Info().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}

// LogWarn is LogEvent at warn level, for conditions that are tolerated
// but should be visible (e.g. a settlement without a resolvable provider).
func LogWarn(requestID, module, action, message string) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()

	l.Warn().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}
