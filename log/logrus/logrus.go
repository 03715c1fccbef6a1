// Package logrus adapts a *logrus.Entry to jsonstore.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/jsonstore"
)

var _ jsonstore.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New tags every entry with component=jsonstore.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "jsonstore")}
}

func (l LogrusLogger) entry(f jsonstore.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}

func (l LogrusLogger) Debug(msg string, f jsonstore.Fields) { l.entry(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f jsonstore.Fields)  { l.entry(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f jsonstore.Fields)  { l.entry(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f jsonstore.Fields) { l.entry(f).Error(msg) }
