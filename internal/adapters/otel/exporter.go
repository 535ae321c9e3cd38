package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "tool-sites"
	serviceVersion = "1.0.0"
)

// Exporter exports tool invocation metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	invocationsTotal metric.Int64Counter
	errorsTotal      metric.Int64Counter
	durationHist     metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	invocationsTotal, err := meter.Int64Counter(
		"toolsites_tool_invocations_total",
		metric.WithDescription("Total tool invocations served"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invocations counter: %w", err)
	}

	errorsTotal, err := meter.Int64Counter(
		"toolsites_tool_errors_total",
		metric.WithDescription("Total tool invocation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating errors counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"toolsites_tool_duration_seconds",
		metric.WithDescription("Tool transform duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		invocationsTotal: invocationsTotal,
		errorsTotal:      errorsTotal,
		durationHist:     durationHist,
	}, nil
}

// RecordInvocation records one served invocation and its transform duration.
func (e *Exporter) RecordInvocation(ctx context.Context, tool string, cached bool, duration time.Duration) {
	opt := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.Bool("cached", cached),
	)
	e.invocationsTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, duration.Seconds(), opt)
}

// RecordError records one failed invocation by error kind.
func (e *Exporter) RecordError(ctx context.Context, tool, kind string) {
	e.errorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("kind", kind),
	))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
