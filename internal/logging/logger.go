// Package logging wraps charmbracelet/log for structured diagnostics
// output. Lint runs log to stderr so machine-readable results on stdout
// stay clean.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// defaultLogger is the shared logger used when no logger travels on the
// context, e.g. by the CLI commands.
//
//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a stderr logger at the given level ("debug", "info",
// "warn", "error"). Timestamps are omitted; lint output is read by
// humans and CI logs supply their own.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the shared default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault replaces the shared default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the level of the default logger. The --debug flag
// routes through here.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}
