// Package logging configures the application logger: level from the
// debug flag, stderr output, optional file output under the configured
// log folder, and masking of credentials in entries.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup builds the root logger. When logFolder is non-empty the logger
// also writes to sequential_thinking.log inside it; a folder that
// cannot be created degrades to stderr-only logging.
func Setup(debug bool, logFolder string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.AddHook(NewMaskHook())

	if logFolder != "" {
		if err := os.MkdirAll(logFolder, 0755); err != nil {
			logger.WithError(err).Warn("cannot create log folder, logging to stderr only")
		} else {
			path := filepath.Join(logFolder, "sequential_thinking.log")
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				logger.WithError(err).Warn("cannot open log file, logging to stderr only")
			} else {
				logger.SetOutput(io.MultiWriter(os.Stderr, file))
			}
		}
	}

	return logger
}

// Component returns a logger entry tagged with a component name, so
// server and team logs stay distinguishable in shared output.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}
