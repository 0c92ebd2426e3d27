// Package logging builds the leveled console logger shared by the CLI,
// the live server and the MCP server.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options holds configuration for a logger
type Options struct {
	Level           string
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used by the nira binaries
func DefaultOptions() Options {
	return Options{
		Level:           "info",
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "nira",
	}
}

// New returns a text logger at the given level writing to w
func New(level string, w io.Writer) *log.Logger {
	opts := DefaultOptions()
	opts.Level = level
	return NewWithOptions(w, opts)
}

// NewWithOptions returns a logger built from opts
func NewWithOptions(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		TimeFormat:      time.Kitchen,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a level name, defaulting to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
