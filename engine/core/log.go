package core

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	loggerMu sync.Mutex
	logger   *log.Logger
)

func newDefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "strata",
		Level:           log.InfoLevel,
	})
}

// Logger returns the engine logger. It writes to stderr until replaced with
// SetLogger.
func Logger() *log.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = newDefaultLogger()
	}
	return logger
}

// SetLogger replaces the engine logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// SetLogLevel parses one of debug, info, warn, error, fatal.
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	Logger().SetLevel(lvl)
	return nil
}
