package app

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "meezan"

// NewLogger builds the process logger. LOG_FORMAT=json selects the
// JSON handler; the default "pretty" stays on the text handler. Every
// record carries the service attr so the two binaries are tellable
// apart in shared log streams.
func NewLogger(cfg *Config) *slog.Logger {
	format := "pretty"
	if cfg != nil {
		format = cfg.LogFormat
	}
	return newLogger(os.Stdout, format)
}

func newLogger(w io.Writer, format string) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", serviceName))
}
