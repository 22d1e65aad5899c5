package signals

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type registryOptions struct {
	id            string
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// Option configures a Registry.
type Option func(*registryOptions)

// WithLogger sets the logger used for debug records. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *registryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeterProvider sets the provider for dispatch counters. Defaults to the
// global otel provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *registryOptions) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithID overrides the random registry id.
func WithID(id string) Option {
	return func(o *registryOptions) {
		if id != "" {
			o.id = id
		}
	}
}

func newRegistryOptions(opts ...Option) *registryOptions {
	o := &registryOptions{
		logger:        slog.Default(),
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
