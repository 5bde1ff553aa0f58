package membuf

import "github.com/hupe1980/membuf/internal/resource"

type options struct {
	source           NativeSource
	logger           *Logger
	metricsCollector MetricsCollector
	memoryLimit      int64
}

// Option configures an Allocator.
type Option func(*options)

// WithSource sets where native blocks come from.
//
// If nil is passed, MmapSource is used.
func WithSource(s NativeSource) Option {
	return func(o *options) {
		if s == nil {
			s = MmapSource{}
		}
		o.source = s
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are disabled.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryLimit caps the native bytes an Allocator may hold at once,
// alignment slack included. Allocations beyond the cap fail with
// ErrOutOfMemory instead of blocking. A limit <= 0 only tracks usage.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

func defaultOptions() options {
	return options{
		source:           MmapSource{},
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func (o *options) controller() *resource.Controller {
	return resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
}
