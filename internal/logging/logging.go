// Package logging builds the logrus loggers used by the azwire tools.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to w at the named level. An empty
// level means "info".
func NewLogger(w io.Writer, level string) (*logrus.Entry, error) {
	if level == "" {
		level = logrus.InfoLevel.String()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logrus.NewEntry(log), nil
}

// Discard returns a logger that drops everything; used where the caller did
// not supply one.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
