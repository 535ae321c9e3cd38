package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Mayi21/tool-sites/internal/domain"
	"github.com/Mayi21/tool-sites/internal/web/templates"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionKey(w, r)

	pref, err := s.prefs.GetOrCreate(ctx, session)
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	favorites := make(map[string]bool, len(pref.FavoriteTools))
	for _, name := range pref.FavoriteTools {
		favorites[name] = true
	}

	var links []templates.ToolLink
	for _, t := range s.registry.All() {
		links = append(links, templates.ToolLink{
			Name:     t.Name,
			Title:    t.Title,
			Favorite: favorites[t.Name],
		})
	}

	var popular []templates.ToolCount
	if top, err := s.usage.TopN(ctx, 5); err != nil {
		log.Printf("failed to load usage: %v", err)
	} else {
		for _, u := range top {
			popular = append(popular, templates.ToolCount{Name: u.ToolName, Count: u.UsageCount})
		}
	}

	var recent []templates.HistoryItem
	if entries, err := s.history.List(ctx, session, 5); err != nil {
		log.Printf("failed to load history: %v", err)
	} else {
		recent = historyItems(entries)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := templates.Index(templates.IndexData{
		Lang:    pref.Language,
		Theme:   pref.Theme,
		Tools:   links,
		Popular: popular,
		Recent:  recent,
	})
	if err := page.Render(ctx, w); err != nil {
		log.Printf("failed to render index: %v", err)
	}
}

func (s *Server) handleHistoryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionKey(w, r)

	pref, err := s.prefs.GetOrCreate(ctx, session)
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entries, err := s.history.List(ctx, session, domain.HistoryLimit)
	if err != nil {
		log.Printf("failed to load history: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := templates.HistoryPage(templates.HistoryPageData{
		Lang:  pref.Language,
		Theme: pref.Theme,
		Items: historyItems(entries),
	})
	if err := page.Render(ctx, w); err != nil {
		log.Printf("failed to render history: %v", err)
	}
}

func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	session := sessionKey(w, r)

	entries, err := s.history.List(r.Context(), session, domain.HistoryLimit)
	if err != nil {
		log.Printf("failed to load history: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]any{
			"tool_name":      e.ToolName,
			"parameters":     e.Parameters,
			"result_preview": e.ResultPreview,
			"created_at":     e.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": items})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	session := sessionKey(w, r)

	pref, err := s.prefs.GetOrCreate(r.Context(), session)
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, preferencePayload(pref))
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	session := sessionKey(w, r)

	var body struct {
		Theme         *string   `json:"theme"`
		Language      *string   `json:"language"`
		FavoriteTools *[]string `json:"favorite_tools"`
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid parameters")
		return
	}

	upd := domain.PreferenceUpdate{
		Theme:         body.Theme,
		Language:      body.Language,
		FavoriteTools: body.FavoriteTools,
	}
	if err := upd.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	pref, err := s.prefs.Update(r.Context(), session, upd)
	if err != nil {
		log.Printf("failed to update preferences: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, preferencePayload(pref))
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionKey(w, r)
	name := r.PathValue("name")

	if _, ok := s.registry.Get(name); !ok {
		writeJSONError(w, http.StatusNotFound, "unknown tool")
		return
	}

	pref, err := s.prefs.GetOrCreate(ctx, session)
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	favorites := make([]string, 0, len(pref.FavoriteTools)+1)
	added := true
	for _, f := range pref.FavoriteTools {
		if f == name {
			added = false
			continue
		}
		favorites = append(favorites, f)
	}
	if added {
		favorites = append(favorites, name)
	}

	pref, err = s.prefs.Update(ctx, session, domain.PreferenceUpdate{FavoriteTools: &favorites})
	if err != nil {
		log.Printf("failed to update favorites: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"favorite":  added,
		"favorites": pref.FavoriteTools,
	})
}

// handleLanguage switches the session language and bounces back to the
// referring page. Unknown codes are ignored rather than rejected so stale
// links degrade gracefully.
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	session := sessionKey(w, r)
	lang := r.PathValue("lang")

	if domain.ValidLanguage(lang) {
		if _, err := s.prefs.Update(r.Context(), session, domain.PreferenceUpdate{Language: &lang}); err != nil {
			log.Printf("failed to update language: %v", err)
		}
	}

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) handleToolStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := s.usage.Total(ctx)
	if err != nil {
		log.Printf("failed to sum usage: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	top, err := s.usage.TopN(ctx, len(s.registry.All()))
	if err != nil {
		log.Printf("failed to load usage: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	rows := make([]map[string]any, 0, len(top))
	for _, u := range top {
		rows = append(rows, map[string]any{
			"tool_name":   u.ToolName,
			"usage_count": u.UsageCount,
			"last_used":   u.LastUsed.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": total, "tools": rows})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func preferencePayload(pref *domain.Preference) map[string]any {
	return map[string]any{
		"theme":          pref.Theme,
		"language":       pref.Language,
		"favorite_tools": pref.FavoriteTools,
	}
}

func historyItems(entries []*domain.HistoryEntry) []templates.HistoryItem {
	items := make([]templates.HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, templates.HistoryItem{
			ToolName: e.ToolName,
			Preview:  e.ResultPreview,
			When:     templates.FormatDateTime(e.CreatedAt),
		})
	}
	return items
}
