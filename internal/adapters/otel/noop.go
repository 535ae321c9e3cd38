package otel

import (
	"context"
	"time"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordInvocation(ctx context.Context, tool string, cached bool, duration time.Duration) {
}

func (e *NoOpExporter) RecordError(ctx context.Context, tool, kind string) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
