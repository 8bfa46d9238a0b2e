package logging

import (
	"fmt"
	"io"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New returns a logger for the configured backend. Slog output goes to w.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		return NewJSONSlogLogger(w, level), nil
	case BackendZap:
		return NewProductionZapLogger(level, "bpmonitor")
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
