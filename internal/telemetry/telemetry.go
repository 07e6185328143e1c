// Package telemetry sets up the structured logger. The TUI owns the
// terminal, so logs go to a file or nowhere, never to stderr.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to the given file at the given level.
// An empty path returns a logger that discards everything. The returned
// closer is nil when no file was opened.
func NewLogger(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "mentalgym",
		Level:           parseLevel(level),
		ReportTimestamp: true,
	})
	return logger, f, nil
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}
