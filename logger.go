package unictest

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Adapters for zap, logrus and log/slog
// live under log/. If Logger is nil in Options, logging is disabled.
//
// The harness never routes its stderr diagnostics through the Logger.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

func (e *RunError) fields() Fields {
	f := Fields{"kind": e.Kind.String(), "state": e.State.String(), "op": e.Op, "err": e.Err}
	if e.Path != "" {
		f["path"] = e.Path
	}
	return f
}
