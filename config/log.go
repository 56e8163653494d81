package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Log is the debug logger. It discards everything unless InitDebugLog
// enabled it, so callers never need a nil check.
var Log = zerolog.Nop()

// InitDebugLog opens <dataDir>/debug.log when WPCHAT_DEBUG is set.
// The returned function closes the file.
func InitDebugLog(dataDir string) func() {
	if !CheckDebug() {
		return func() {}
	}

	if err := EnsureDir(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create data directory %s: %v\n", dataDir, err)
		return func() {}
	}

	logPath := filepath.Join(dataDir, "debug.log")

	// 0600 - may contain user queries and server responses
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return func() {}
	}

	Log = zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Caller().
		Logger()
	zerolog.TimeFieldFormat = time.RFC3339Nano

	Log.Info().Str("path", logPath).Msg("debug logging started")

	return func() {
		Log.Info().Msg("debug logging stopped")
		Log = zerolog.Nop()
		_ = f.Close()
	}
}
