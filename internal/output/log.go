// Package output provides logging and rendering helpers for the CLI.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the CLI's diagnostic logger. It writes to stderr so command
// output on stdout stays machine readable.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Level: log.WarnLevel,
})

// SetupLogging configures the logger based on verbosity.
func SetupLogging(verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
}
