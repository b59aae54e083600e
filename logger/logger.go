package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init sets up the structured logger. Production logs are JSON.
func Init(level string, env string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if env == "production" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// Get returns the shared logger, creating a discarding one if Init was never
// called (tests, library use).
func Get() *logrus.Logger {
	if Log == nil {
		Log = logrus.New()
		Log.SetOutput(io.Discard)
	}
	return Log
}
