package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Converts a level name to a logrus level. An empty name means info.
func ParseLevel(name string) (logrus.Level, error) {
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, e := logrus.ParseLevel(name)
	if e != nil {
		return logrus.InfoLevel, fmt.Errorf("%w: %s", ErrInvalidValue, e)
	}
	return level, nil
}

// Returns a logger writing human-readable text to stderr at the given level.
func NewLogger(level string) (*logrus.Logger, error) {
	return NewLoggerWithOutput(level, os.Stderr)
}

// Same as NewLogger, but writes to w.
func NewLoggerWithOutput(level string, w io.Writer) (*logrus.Logger, error) {
	parsed, e := ParseLevel(level)
	if e != nil {
		return nil, e
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(parsed)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log, nil
}
