package domain

import (
	"fmt"
	"time"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	LanguageChinese = "zh-hans"
	LanguageEnglish = "en"
)

// Preference is the per-session settings record. Exactly one row exists per
// session key, created lazily on first access and never deleted.
type Preference struct {
	SessionKey    string
	Theme         string
	Language      string
	FavoriteTools []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PreferenceUpdate carries one optional field per known preference. Unknown
// fields cannot be expressed here, so they cannot be accepted silently.
type PreferenceUpdate struct {
	Theme         *string
	Language      *string
	FavoriteTools *[]string
}

func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}

func ValidLanguage(s string) bool {
	return s == LanguageChinese || s == LanguageEnglish
}

// Validate rejects updates whose enumerated fields fall outside the known
// values before they reach storage.
func (u PreferenceUpdate) Validate() error {
	if u.Theme != nil && !ValidTheme(*u.Theme) {
		return fmt.Errorf("unknown theme %q", *u.Theme)
	}
	if u.Language != nil && !ValidLanguage(*u.Language) {
		return fmt.Errorf("unknown language %q", *u.Language)
	}
	return nil
}
