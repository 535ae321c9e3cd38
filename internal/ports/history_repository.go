package ports

import (
	"context"

	"github.com/Mayi21/tool-sites/internal/domain"
)

// HistoryRepository persists the bounded per-session invocation log.
type HistoryRepository interface {
	// Append inserts an entry and prunes anything beyond the newest
	// domain.HistoryLimit entries for the session in the same transaction.
	Append(ctx context.Context, entry *domain.HistoryEntry) error

	// List returns up to limit entries for the session, most recent first.
	// Each call restarts from the top; this is not a live cursor.
	List(ctx context.Context, sessionKey string, limit int) ([]*domain.HistoryEntry, error)
}
