package zap

import (
	"io"
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/unictest"
)

var _ unictest.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New returns a console logger writing to w at the given level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (ZapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return ZapLogger{}, err
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return ZapLogger{L: zap.New(core)}, nil
}

func (z ZapLogger) Debug(msg string, f unictest.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f unictest.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f unictest.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f unictest.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f unictest.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
