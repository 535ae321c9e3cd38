package domain

import (
	"time"
	"unicode/utf8"
)

// HistoryLimit caps the number of retained entries per session. Inserting
// beyond the limit prunes the oldest entries.
const HistoryLimit = 50

// PreviewMaxLen caps stored result previews in bytes.
const PreviewMaxLen = 200

// HistoryEntry records one completed tool invocation for a session. Entries
// are append-only; pruning happens at insertion time.
type HistoryEntry struct {
	ID            int64
	SessionKey    string
	ToolName      string
	Parameters    map[string]any
	ResultPreview string
	CreatedAt     time.Time
}

// TruncatePreview cuts a preview down to PreviewMaxLen with a truncation
// marker, backing up so the cut never splits a UTF-8 sequence.
func TruncatePreview(s string) string {
	if len(s) <= PreviewMaxLen {
		return s
	}
	cut := PreviewMaxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
