// Package logging builds the diagnostic logger shared by pacup's commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every diagnostic line.
const Prefix = "pacup"

// New returns a logger writing to w. Only warnings and errors are shown
// unless verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
