package logger

import (
	"strings"
	"sync"
)

// Level names accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	shared *Logger
	once   sync.Once
)

// Get returns the process-wide logger at the given level. The level is
// matched case-insensitively; only the first caller's level takes effect,
// later calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		shared = newZapLogger(strings.ToLower(strings.TrimSpace(level)))
	})
	return shared
}
