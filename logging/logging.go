package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is shared by every package of the binary
var Log = logrus.New()

func init() {
	Log.Out = os.Stderr
	Log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
}

// Setup sets the level ("debug", "info", "warn", "error") and the output format.
// Unknown levels fall back to info and are reported.
func Setup(level string, json bool) {
	if json {
		Log.Formatter = &logrus.JSONFormatter{}
	} else {
		Log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		Log.WithField("level", level).Warn("unknown log level, using info")
		return
	}
	Log.SetLevel(parsed)
}

// SetOutput redirects the log, e.g. away from a terminal in raw mode
func SetOutput(out io.Writer) {
	Log.Out = out
}
