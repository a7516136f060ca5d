package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the process-wide logger. Production gets JSON output,
// everything else gets human readable text.
func Init(level, environment string) {
	log.SetOutput(os.Stdout)

	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetLevel(ParseLevel(level, environment))
}

// ParseLevel falls back to info in production and debug elsewhere.
func ParseLevel(level, environment string) logrus.Level {
	if lvl, err := logrus.ParseLevel(strings.TrimSpace(level)); err == nil && level != "" {
		return lvl
	}
	if environment == "production" {
		return logrus.InfoLevel
	}
	return logrus.DebugLevel
}

func Level() logrus.Level {
	return log.GetLevel()
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Fatal(args ...interface{}) {
	log.Fatal(args...)
}
