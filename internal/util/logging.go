// Package util provides common utilities including logging helpers and
// file system path resolution.
package util

import (
	"go.uber.org/zap"
)

// log defaults to a no-op logger so packages can log before InitLogging
// runs (and tests never write files).
var log = zap.NewNop()

// InitLogging routes the process log to the given file. Stdout belongs to
// the TUI, so nothing is ever logged there.
func InitLogging(path string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	return log
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Error(context, zap.Error(err))
	}
}

// CloseLogging flushes buffered log entries.
func CloseLogging() {
	_ = log.Sync()
}
