package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the loader's OpenTelemetry metric instruments.
type Metrics struct {
	loadTotal    metric.Int64Counter
	loadDuration metric.Float64Histogram
	loadErrors   metric.Int64Counter
	enginesReady metric.Int64UpDownCounter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	loadTotal, err := meter.Int64Counter("engine.load.total",
		metric.WithDescription("Total number of engine load attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engine.load.total counter: %w", err)
	}

	loadDuration, err := meter.Float64Histogram("engine.load.duration",
		metric.WithDescription("Duration of engine load attempts in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engine.load.duration histogram: %w", err)
	}

	loadErrors, err := meter.Int64Counter("engine.load.errors",
		metric.WithDescription("Engine load failures by provider and stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engine.load.errors counter: %w", err)
	}

	enginesReady, err := meter.Int64UpDownCounter("engine.ready",
		metric.WithDescription("Number of engines currently ready"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engine.ready gauge: %w", err)
	}

	return &Metrics{
		loadTotal:    loadTotal,
		loadDuration: loadDuration,
		loadErrors:   loadErrors,
		enginesReady: enginesReady,
	}, nil
}

// RecordLoad records one load attempt for a provider.
func (m *Metrics) RecordLoad(ctx context.Context, provider, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	)
	m.loadTotal.Add(ctx, 1, attrs)
	m.loadDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
	))
	if status == "ok" {
		m.enginesReady.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", provider),
		))
	}
}

// RecordLoadError records a load failure by provider and stage.
func (m *Metrics) RecordLoadError(ctx context.Context, provider, stage string) {
	m.loadErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("stage", stage),
	))
}
