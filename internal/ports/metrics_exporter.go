package ports

import (
	"context"
	"time"
)

// MetricsExporter publishes per-invocation telemetry. Implementations must
// tolerate being called on every request; failures are not surfaced to users.
type MetricsExporter interface {
	RecordInvocation(ctx context.Context, tool string, cached bool, duration time.Duration)
	RecordError(ctx context.Context, tool, kind string)
	Close(ctx context.Context) error
}
