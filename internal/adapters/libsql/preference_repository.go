package libsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Mayi21/tool-sites/internal/domain"
)

// PreferenceRepository stores per-session preferences in libsql.
type PreferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetOrCreate returns the session's preference row, inserting a default one
// on first access. The insert ignores conflicts so concurrent first requests
// for the same session don't race.
func (r *PreferenceRepository) GetOrCreate(ctx context.Context, sessionKey string) (*domain.Preference, error) {
	pref, err := r.get(ctx, sessionKey)
	if err == nil {
		return pref, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	now := formatTime(time.Now())
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_preferences (session_key, theme, language, favorite_tools, created_at, updated_at)
		VALUES (?, ?, ?, '[]', ?, ?)
		ON CONFLICT(session_key) DO NOTHING
	`, sessionKey, domain.ThemeLight, domain.LanguageChinese, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	pref, err = r.get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref, nil
}

// Update applies the set fields of upd and returns the resulting record.
func (r *PreferenceRepository) Update(ctx context.Context, sessionKey string, upd domain.PreferenceUpdate) (*domain.Preference, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	if _, err := r.GetOrCreate(ctx, sessionKey); err != nil {
		return nil, err
	}

	sets := []string{"updated_at = ?"}
	args := []any{formatTime(time.Now())}
	if upd.Theme != nil {
		sets = append(sets, "theme = ?")
		args = append(args, *upd.Theme)
	}
	if upd.Language != nil {
		sets = append(sets, "language = ?")
		args = append(args, *upd.Language)
	}
	if upd.FavoriteTools != nil {
		favs, err := json.Marshal(*upd.FavoriteTools)
		if err != nil {
			return nil, fmt.Errorf("failed to encode favorites: %w", err)
		}
		sets = append(sets, "favorite_tools = ?")
		args = append(args, string(favs))
	}
	args = append(args, sessionKey)

	query := "UPDATE user_preferences SET " + strings.Join(sets, ", ") + " WHERE session_key = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update preference: %w", err)
	}

	pref, err := r.get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref, nil
}

func (r *PreferenceRepository) get(ctx context.Context, sessionKey string) (*domain.Preference, error) {
	var (
		pref                 domain.Preference
		favs                 string
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT session_key, theme, language, favorite_tools, created_at, updated_at
		FROM user_preferences
		WHERE session_key = ?
	`, sessionKey).Scan(&pref.SessionKey, &pref.Theme, &pref.Language, &favs, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(favs), &pref.FavoriteTools); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	if pref.FavoriteTools == nil {
		pref.FavoriteTools = []string{}
	}
	pref.CreatedAt = parseTime(createdAt)
	pref.UpdatedAt = parseTime(updatedAt)
	return &pref, nil
}
