package ejbmeta

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// assemblerMetrics holds the metric instruments of an Assembler. They are
// created once in NewAssembler and shared by every call.
type assemblerMetrics struct {
	// assembled counts beans whose metadata was produced
	assembled metric.Int64Counter

	// duration records the time spent in Assemble in milliseconds
	duration metric.Float64Histogram

	// upgraded counts hash generation changes made while locating classes
	upgraded metric.Int64Counter

	// configErrors counts configuration errors by code
	configErrors metric.Int64Counter
}

func newAssemblerMetrics(meter metric.Meter) (*assemblerMetrics, error) {
	m := &assemblerMetrics{}
	var err error

	m.assembled, err = meter.Int64Counter(
		"ejbmeta.beans.assembled",
		metric.WithDescription("Number of beans whose metadata was assembled"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create assembled counter: %w", err)
	}

	m.duration, err = meter.Float64Histogram(
		"ejbmeta.assembly.duration",
		metric.WithDescription("Bean assembly duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	m.upgraded, err = meter.Int64Counter(
		"ejbmeta.names.upgraded",
		metric.WithDescription("Number of hash generation upgrades made to load generated classes"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create upgraded counter: %w", err)
	}

	m.configErrors, err = meter.Int64Counter(
		"ejbmeta.config.errors",
		metric.WithDescription("Number of bean configuration errors"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create config error counter: %w", err)
	}

	return m, nil
}

func (m *assemblerMetrics) recordAssembly(ctx context.Context, module, kind string, ms float64) {
	opts := metric.WithAttributes(
		attribute.String("ejbmeta.module", module),
		attribute.String("ejbmeta.bean_kind", kind),
	)
	m.assembled.Add(ctx, 1, opts)
	m.duration.Record(ctx, ms, opts)
}

func (m *assemblerMetrics) recordConfigError(ctx context.Context, code string) {
	if code == "" {
		code = "unknown"
	}
	m.configErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("ejbmeta.code", code)))
}

func (m *assemblerMetrics) recordUpgrade(ctx context.Context, generation string) {
	m.upgraded.Add(ctx, 1, metric.WithAttributes(attribute.String("ejbmeta.hash_generation", generation)))
}
