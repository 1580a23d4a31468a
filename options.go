package region

import (
	"io"
	"log/slog"
)

// discardLogger is used by arenas that were not given a logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type options struct {
	logger *slog.Logger
	source blockSource
}

// Option configures an Arena at construction time.
type Option func(*options)

// WithLogger routes the arena's diagnostics (block growth at Debug level,
// backing-store failures at Error level) to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMmap backs every block with an anonymous memory mapping instead of a
// Go slice. Mapped blocks are invisible to the garbage collector and are
// unmapped by Release. On platforms without mmap this is a no-op.
func WithMmap() Option {
	return func(o *options) {
		o.source = newMmapSource()
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: discardLogger, source: heapSource{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
