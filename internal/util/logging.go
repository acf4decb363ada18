// Package util provides common utilities including logging helpers,
// file system locations and small numeric helpers.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. The terminal belongs to the UI while it
// runs, so L discards output until SetupLogging points it at a file.
var L = clog.New(io.Discard)

// SetupLogging routes L to the file at path, creating parent directories.
// The returned closer releases the file.
func SetupLogging(path, prefix string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	L = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		L.SetLevel(clog.DebugLevel)
	}
	return f, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		L.Error(context, "err", err)
	}
}
