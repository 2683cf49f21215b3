package pool

import (
	"log/slog"

	"github.com/dogmatiq/wirekit/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// An Option changes the behavior of a [Pool] or [Registry].
type Option func(*options)

type options struct {
	Capacity  int
	Logger    *slog.Logger
	Telemetry telemetry.Provider
}

// WithCapacity sets the number of instances a pool holds.
//
// The default is [DefaultCapacity].
func WithCapacity(n int) Option {
	if n <= 0 {
		panic("capacity must be positive")
	}

	return func(o *options) {
		o.Capacity = n
	}
}

// WithLogger sets the logger used to report pool misuse, such as an instance
// that is returned more than once.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.Logger = l
	}
}

// WithTelemetry enables trace, metric and log instrumentation of pool
// activity using the given providers.
func WithTelemetry(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	lp log.LoggerProvider,
) Option {
	return func(o *options) {
		o.Telemetry = telemetry.Provider{
			TracerProvider: tp,
			MeterProvider:  mp,
			LoggerProvider: lp,
		}
	}
}

func resolveOptions(opts []Option) options {
	o := options{
		Capacity: DefaultCapacity,
		Logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
