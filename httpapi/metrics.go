package httpapi

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/0xalexb/hjarta-modelconfig/httpapi"

// Lookup outcomes recorded on the lookups counter.
const (
	OutcomeFound      = "found"
	OutcomeMissing    = "missing"
	OutcomeParseError = "parse_error"
	OutcomeError      = "error"
)

type lookupMetrics struct {
	lookups metric.Int64Counter
	latency metric.Float64Histogram
}

func newLookupMetrics(provider metric.MeterProvider) (*lookupMetrics, error) {
	meter := provider.Meter(meterName)

	lookups, err := meter.Int64Counter("modelconfig.lookups",
		metric.WithDescription("Number of configuration lookups served over HTTP"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lookups counter: %w", err)
	}

	latency, err := meter.Float64Histogram("modelconfig.lookup.latency_ms",
		metric.WithDescription("Time spent reading and parsing the configuration file"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating latency histogram: %w", err)
	}

	return &lookupMetrics{
		lookups: lookups,
		latency: latency,
	}, nil
}

func (m *lookupMetrics) record(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	m.lookups.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(elapsed.Microseconds())/1000.0, attrs)
}
