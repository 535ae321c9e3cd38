package libsql

import (
	"database/sql"
	"time"
)

// Repositories bundles every libsql-backed repository over one connection
// pool.
type Repositories struct {
	Preferences *PreferenceRepository
	History     *HistoryRepository
	Usage       *UsageRepository
}

// NewRepositories creates all repositories sharing the given database.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Preferences: NewPreferenceRepository(db),
		History:     NewHistoryRepository(db),
		Usage:       NewUsageRepository(db),
	}
}

// Timestamps are stored as RFC3339 text so rows stay readable in the sqlite
// shell and sort lexicographically in time order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
