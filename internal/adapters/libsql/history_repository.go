package libsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mayi21/tool-sites/internal/domain"
)

// HistoryRepository stores the bounded per-session invocation log in libsql.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append inserts an entry and prunes the session's log down to
// domain.HistoryLimit newest entries in the same transaction.
func (r *HistoryRepository) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	params, err := json.Marshal(entry.Parameters)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO user_history (session_key, tool_name, parameters, result_preview, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.SessionKey, entry.ToolName, string(params), entry.ResultPreview, formatTime(createdAt))
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM user_history
		WHERE session_key = ?
		AND id NOT IN (
			SELECT id FROM user_history
			WHERE session_key = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`, entry.SessionKey, entry.SessionKey, domain.HistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history entry: %w", err)
	}
	return nil
}

// List returns up to limit entries for the session, newest first.
func (r *HistoryRepository) List(ctx context.Context, sessionKey string, limit int) ([]*domain.HistoryEntry, error) {
	if limit <= 0 || limit > domain.HistoryLimit {
		limit = domain.HistoryLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_key, tool_name, parameters, result_preview, created_at
		FROM user_history
		WHERE session_key = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, sessionKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		var (
			entry     domain.HistoryEntry
			params    string
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.SessionKey, &entry.ToolName, &params, &entry.ResultPreview, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &entry.Parameters); err != nil {
			return nil, fmt.Errorf("failed to decode parameters: %w", err)
		}
		entry.CreatedAt = parseTime(createdAt)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
