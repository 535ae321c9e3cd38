package libsql

import (
	"context"
	"testing"

	"github.com/Mayi21/tool-sites/internal/domain"
)

func TestPreferenceGetOrCreateDefaults(t *testing.T) {
	repo := NewPreferenceRepository(testDB(t))
	ctx := context.Background()

	pref, err := repo.GetOrCreate(ctx, "session-a")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if pref.Theme != domain.ThemeLight {
		t.Errorf("expected default theme %q, got %q", domain.ThemeLight, pref.Theme)
	}
	if pref.Language != domain.LanguageChinese {
		t.Errorf("expected default language %q, got %q", domain.LanguageChinese, pref.Language)
	}
	if len(pref.FavoriteTools) != 0 {
		t.Errorf("expected no favorites, got %v", pref.FavoriteTools)
	}
	if pref.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	// Second call returns the same row, not a new one.
	again, err := repo.GetOrCreate(ctx, "session-a")
	if err != nil {
		t.Fatalf("second GetOrCreate failed: %v", err)
	}
	if !again.CreatedAt.Equal(pref.CreatedAt) {
		t.Error("expected GetOrCreate to be idempotent")
	}
}

func TestPreferenceUpdate(t *testing.T) {
	repo := NewPreferenceRepository(testDB(t))
	ctx := context.Background()

	dark := domain.ThemeDark
	favs := []string{"base64", "diff"}
	pref, err := repo.Update(ctx, "session-b", domain.PreferenceUpdate{
		Theme:         &dark,
		FavoriteTools: &favs,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if pref.Theme != domain.ThemeDark {
		t.Errorf("expected theme %q, got %q", domain.ThemeDark, pref.Theme)
	}
	// Untouched fields keep their defaults.
	if pref.Language != domain.LanguageChinese {
		t.Errorf("expected language untouched, got %q", pref.Language)
	}
	if len(pref.FavoriteTools) != 2 || pref.FavoriteTools[0] != "base64" {
		t.Errorf("unexpected favorites: %v", pref.FavoriteTools)
	}

	english := domain.LanguageEnglish
	pref, err = repo.Update(ctx, "session-b", domain.PreferenceUpdate{Language: &english})
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if pref.Theme != domain.ThemeDark {
		t.Error("expected earlier theme update to survive")
	}
	if pref.Language != domain.LanguageEnglish {
		t.Errorf("expected language %q, got %q", domain.LanguageEnglish, pref.Language)
	}
}

func TestPreferenceUpdateRejectsUnknownValues(t *testing.T) {
	repo := NewPreferenceRepository(testDB(t))
	ctx := context.Background()

	bogus := "sepia"
	if _, err := repo.Update(ctx, "session-c", domain.PreferenceUpdate{Theme: &bogus}); err == nil {
		t.Fatal("expected unknown theme to be rejected")
	}

	klingon := "tlh"
	if _, err := repo.Update(ctx, "session-c", domain.PreferenceUpdate{Language: &klingon}); err == nil {
		t.Fatal("expected unknown language to be rejected")
	}
}
