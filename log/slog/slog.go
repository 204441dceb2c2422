package slog

import (
	"context"
	"io"
	stdslog "log/slog"
	"maps"
	"slices"

	"github.com/unkn0wn-root/unictest"
)

var _ unictest.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New returns a text handler logger on w without timestamps.
func New(w io.Writer, level string) (Logger, error) {
	var lvl stdslog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return Logger{}, err
	}
	h := stdslog.NewTextHandler(w, &stdslog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a stdslog.Attr) stdslog.Attr {
			if len(groups) == 0 && a.Key == stdslog.TimeKey {
				return stdslog.Attr{}
			}
			return a
		},
	})
	return Logger{L: stdslog.New(h)}, nil
}

func (s Logger) Debug(msg string, f unictest.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelDebug, msg, attrs(f)...)
}
func (s Logger) Info(msg string, f unictest.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelInfo, msg, attrs(f)...)
}
func (s Logger) Warn(msg string, f unictest.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelWarn, msg, attrs(f)...)
}
func (s Logger) Error(msg string, f unictest.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelError, msg, attrs(f)...)
}

func attrs(f unictest.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
