// Package buildcfg holds the configuration a harness binary is built with.
// The harness takes no flags, environment variables or files; values are
// fixed at link time, e.g.
//
//	go build -ldflags "-X github.com/unkn0wn-root/unictest/internal/buildcfg.LogLevel=debug" ./cmd/unictest-cbor
//
// Invalid values fall back to the defaults.
package buildcfg

import (
	"io"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/unictest"
	"github.com/unkn0wn-root/unictest/codec"
	logruslog "github.com/unkn0wn-root/unictest/log/logrus"
	sloglog "github.com/unkn0wn-root/unictest/log/slog"
	zaplog "github.com/unkn0wn-root/unictest/log/zap"
)

// Set with -ldflags "-X".
var (
	LogLevel      = ""    // "", debug, info, warn, error; empty disables logging
	LogBackend    = "zap" // zap, logrus or slog
	MaxInputBytes = ""    // decimal byte count; empty or 0 means unlimited
)

const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendSlog   = "slog"
)

type Config struct {
	LogLevel      string
	LogBackend    string
	MaxInputBytes int
}

// Load parses the link-time variables.
func Load() Config { return parse(LogLevel, LogBackend, MaxInputBytes) }

func parse(level, backend, maxInput string) Config {
	cfg := Config{LogBackend: BackendZap}

	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = l
	}
	switch b := strings.ToLower(strings.TrimSpace(backend)); b {
	case BackendZap, BackendLogrus, BackendSlog:
		cfg.LogBackend = b
	}
	if n, err := strconv.Atoi(strings.TrimSpace(maxInput)); err == nil && n > 0 {
		cfg.MaxInputBytes = n
	}
	return cfg
}

// Logger builds the configured logger on w, or a NopLogger when logging is
// disabled.
func (c Config) Logger(w io.Writer) unictest.Logger {
	if c.LogLevel == "" {
		return unictest.NopLogger{}
	}

	var (
		l   unictest.Logger
		err error
	)
	switch c.LogBackend {
	case BackendLogrus:
		l, err = logruslog.New(w, c.LogLevel)
	case BackendSlog:
		l, err = sloglog.New(w, c.LogLevel)
	default:
		l, err = zaplog.New(w, c.LogLevel)
	}
	if err != nil {
		return unictest.NopLogger{}
	}
	return l
}

// Apply wraps c with the configured input limit, if any.
func Apply[V any](cfg Config, c codec.Codec[V]) codec.Codec[V] {
	if cfg.MaxInputBytes <= 0 {
		return c
	}
	return codec.Limit[V]{Inner: c, MaxDecode: cfg.MaxInputBytes}
}

// Main runs the harness for one binary with the link-time configuration.
func Main[V any](args []string, c codec.Codec[V], stderr io.Writer) int {
	cfg := Load()
	return unictest.Main(args, Apply(cfg, c), unictest.Options{
		Stderr: stderr,
		Logger: cfg.Logger(stderr),
	})
}
