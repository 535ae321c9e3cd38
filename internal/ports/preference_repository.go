package ports

import (
	"context"

	"github.com/Mayi21/tool-sites/internal/domain"
)

// PreferenceRepository persists per-session preference records.
type PreferenceRepository interface {
	// GetOrCreate returns the session's preference record, inserting one
	// with default values on first access.
	GetOrCreate(ctx context.Context, sessionKey string) (*domain.Preference, error)

	// Update applies the set fields of the update record and returns the
	// resulting preference. Enumerated fields outside the known values are
	// rejected.
	Update(ctx context.Context, sessionKey string, upd domain.PreferenceUpdate) (*domain.Preference, error)
}
