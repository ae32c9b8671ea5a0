// Package logging configures the global logrus logger for the CLI.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelFor maps the -v count to a log level.
func LevelFor(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.WarnLevel
	case verbosity == 1:
		return logrus.InfoLevel
	case verbosity == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Setup configures the standard logger. A nil out writes to stderr.
func Setup(verbosity int, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)
	logrus.SetLevel(LevelFor(verbosity))
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: verbosity < 2,
		FullTimestamp:    true,
	})
	// caller info for debug and trace
	logrus.SetReportCaller(verbosity >= 2)

	logrus.WithField("verbosity", verbosity).Debug("logger initialized")
}
