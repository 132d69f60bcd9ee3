package logger

import (
	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	log logrus.FieldLogger
}

var _ Logger = &logrusLogger{}

// NewLogrus adapts a logrus logger (or entry) to the client's Logger
// interface, so hosts that already run logrus keep one logging tree.
func NewLogrus(log logrus.FieldLogger) Logger {
	return &logrusLogger{log: log}
}

func (l *logrusLogger) Debugf(format string, args ...any) {
	l.log.Debugf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...any) {
	l.log.Errorf(format, args...)
}
