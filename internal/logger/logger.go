// Package logger configures the process-wide logrus logger from the logging
// section of the application configuration. It is called once at startup;
// everything else logs through logrus directly.
package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Init applies level and format to the standard logrus logger. Unknown
// values fall back to info and json so a typo in the config never silences
// the process.
func Init(level, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
