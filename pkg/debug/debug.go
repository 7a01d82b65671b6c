// Package debug provides optional structured debug logging.
//
// When the ANCHOR_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise only warnings are emitted,
// to stderr.
package debug

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	logger  *logrus.Logger
	logFile *os.File
)

func init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	if path := os.Getenv("ANCHOR_DEBUG"); path != "" {
		if err := Init(path); err != nil {
			logger.WithError(err).Warn("debug log init failed")
		}
	}
}

// Init routes debug logging to the specified file path at debug level.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create log directory")
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "open debug log")
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return nil
}

// Close closes the debug log file and restores the stderr warning sink.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Discard silences all logging, warnings included. Used by tests.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(io.Discard)
}

// Logf writes a debug-level message.
func Logf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Warnf writes a warning-level message.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}
