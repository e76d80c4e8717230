// ABOUTME: Debug logger for the TUI that writes slog records to a file
// ABOUTME: Avoids interfering with terminal display while capturing editor activity

package debuglog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/markalston/led-wall-calculator/backend/logger"
)

// EnvVar names the log file; unset disables logging
const EnvVar = "LEDWALL_DEBUG_LOG"

var (
	mu      sync.Mutex
	logFile *os.File
	log     = logger.Discard()
)

// Init opens path for appending and routes debug records to it.
// An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	logFile = f
	log = logger.New(f, "debug", os.Getenv("LOG_FORMAT"))
	return nil
}

// InitFromEnv calls Init with the path from LEDWALL_DEBUG_LOG
func InitFromEnv() error {
	return Init(os.Getenv(EnvVar))
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	log = logger.Discard()
}

// Logger returns the current debug logger
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// Debug logs a debug record with key/value attributes
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Error logs an error with context
func Error(context string, err error) {
	if err == nil {
		return
	}
	Logger().Error(context, "error", err)
}

// Warn logs a warning record
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}
