package ejbmeta

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/ejbmeta/store"
)

// Option configures an Assembler.
type Option func(*config)

// config holds the settings of an Assembler instance.
type config struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	store          store.Store
}

// WithLogger sets the logger for assembly, resolver and namer messages.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracerProvider sets the provider of the assembler's tracer.
// If not provided, the global provider from otel.GetTracerProvider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the provider of the assembler's metrics.
// If not provided, the global provider from otel.GetMeterProvider is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithStore sets where naming records are kept between runs. The
// Assembler does not close it. Defaults to an in-memory store.
func WithStore(s store.Store) Option {
	return func(c *config) {
		c.store = s
	}
}
