package logrus

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/unictest"
)

var _ unictest.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New returns a text logger writing to w. Keys are sorted and timestamps
// omitted so that output is stable between runs.
func New(w io.Writer, level string) (LogrusLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return LogrusLogger{}, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return LogrusLogger{E: logrus.NewEntry(l)}, nil
}

func (l LogrusLogger) Debug(msg string, f unictest.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f unictest.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f unictest.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f unictest.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
