package libsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Mayi21/tool-sites/internal/domain"
)

// UsageRepository stores process-wide per-tool counters in libsql.
type UsageRepository struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// RecordUse creates the counter row on first use, then increments it. The
// upsert keeps concurrent increments atomic without a read-modify-write.
func (r *UsageRepository) RecordUse(ctx context.Context, toolName string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tool_usage (tool_name, usage_count, last_used)
		VALUES (?, 1, ?)
		ON CONFLICT(tool_name) DO UPDATE SET
			usage_count = usage_count + 1,
			last_used = excluded.last_used
	`, toolName, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to record tool use: %w", err)
	}
	return nil
}

// TopN returns up to n counters ordered by count descending, name ascending
// on ties.
func (r *UsageRepository) TopN(ctx context.Context, n int) ([]*domain.ToolUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tool_name, usage_count, last_used
		FROM tool_usage
		ORDER BY usage_count DESC, tool_name ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool usage: %w", err)
	}
	defer rows.Close()

	var usages []*domain.ToolUsage
	for rows.Next() {
		usage, err := scanUsage(rows)
		if err != nil {
			return nil, err
		}
		usages = append(usages, usage)
	}
	return usages, rows.Err()
}

// Get returns the counter for one tool, or nil if it was never used.
func (r *UsageRepository) Get(ctx context.Context, toolName string) (*domain.ToolUsage, error) {
	var (
		usage    domain.ToolUsage
		lastUsed string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT tool_name, usage_count, last_used
		FROM tool_usage
		WHERE tool_name = ?
	`, toolName).Scan(&usage.ToolName, &usage.UsageCount, &lastUsed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tool usage: %w", err)
	}
	usage.LastUsed = parseTime(lastUsed)
	return &usage, nil
}

// Total sums every counter.
func (r *UsageRepository) Total(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(usage_count), 0) FROM tool_usage`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum tool usage: %w", err)
	}
	return total, nil
}

func scanUsage(rows *sql.Rows) (*domain.ToolUsage, error) {
	var (
		usage    domain.ToolUsage
		lastUsed string
	)
	if err := rows.Scan(&usage.ToolName, &usage.UsageCount, &lastUsed); err != nil {
		return nil, fmt.Errorf("failed to scan tool usage: %w", err)
	}
	usage.LastUsed = parseTime(lastUsed)
	return &usage, nil
}
