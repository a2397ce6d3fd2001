// ABOUTME: Logger construction shared by the CLI, UI, and MCP server
// ABOUTME: Maps --verbose/--quiet onto charmbracelet/log levels
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const prefix = "numfacts"

// New creates a logger writing to w. Verbose enables debug output, quiet
// limits output to errors. Verbose wins if both are set.
func New(w io.Writer, verbose, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	logger.SetLevel(Level(verbose, quiet))
	return logger
}

// Level returns the log level for the given flags
func Level(verbose, quiet bool) log.Level {
	switch {
	case verbose:
		return log.DebugLevel
	case quiet:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile creates a logger appending to path. The returned closer must be
// closed when the caller is done logging.
func OpenFile(path string, verbose bool) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, verbose, false), f, nil
}
