package ports

import (
	"context"

	"github.com/Mayi21/tool-sites/internal/domain"
)

// UsageRepository persists process-wide per-tool invocation counters.
type UsageRepository interface {
	// RecordUse atomically creates the counter row if absent, then
	// increments it by one.
	RecordUse(ctx context.Context, toolName string) error

	// TopN returns up to n counters ordered by count descending, tool name
	// ascending on ties.
	TopN(ctx context.Context, n int) ([]*domain.ToolUsage, error)

	// Get returns the counter for one tool, or nil if never used.
	Get(ctx context.Context, toolName string) (*domain.ToolUsage, error)

	// Total sums all counters.
	Total(ctx context.Context) (int64, error)
}
