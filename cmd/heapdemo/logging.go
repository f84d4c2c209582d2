package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger writes structured events tagged with a component and event type.
type Logger interface {
	Log(ctx context.Context, level logrus.Level, eventType string, message string, details map[string]interface{})
}

type logger struct {
	entry *logrus.Entry
}

func newLogger(base *logrus.Logger, component string) *logger {
	return &logger{
		entry: base.WithField("component", component),
	}
}

func (l *logger) Log(ctx context.Context, level logrus.Level, eventType string, message string, details map[string]interface{}) {
	l.entry.WithContext(ctx).
		WithField("event_type", eventType).
		WithFields(details).
		Log(level, message)
}

// newBaseLogger builds the process logger from the configured level and format.
func newBaseLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return l, nil
}
