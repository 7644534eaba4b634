package monitor

import (
	"log/slog"

	"github.com/ib-77/assembly/pkg/assembly"
)

// MaxItems bounds the table size accepted by New.
const MaxItems = 1 << 24

// Handlers are called with the monitor lock held, in item order. They must not
// call back into the monitor.
type Handlers struct {
	OnBuilt     func(index int, item assembly.Item)
	OnInspected func(report assembly.Report)
}

type Option func(m *Monitor)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithHandlers(handlers Handlers) Option {
	return func(m *Monitor) {
		m.handlers = handlers
	}
}
