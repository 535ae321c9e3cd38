package web

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/Mayi21/tool-sites/internal/cache"
	"github.com/Mayi21/tool-sites/internal/domain"
	"github.com/Mayi21/tool-sites/internal/form"
	"github.com/Mayi21/tool-sites/internal/tools"
	"github.com/Mayi21/tool-sites/internal/web/templates"
)

const maxRequestBody = 1 << 20 // 1 MiB

// isDataRequest reports whether the client asked for a JSON response rather
// than a rendered page.
func isDataRequest(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// handleToolGet renders a tool's page with its initial form context.
func (s *Server) handleToolGet(w http.ResponseWriter, r *http.Request) {
	tool, ok := s.registry.Get(r.PathValue("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	session := sessionKey(w, r)
	pref, err := s.prefs.GetOrCreate(r.Context(), session)
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.renderToolPage(w, r, tool, pref, defaultValues(tool), nil, "")
}

// handleToolPost runs one tool invocation: validate, consult the cache,
// transform, record usage and history, then answer in the requested mode.
func (s *Server) handleToolPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tool, ok := s.registry.Get(r.PathValue("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	session := sessionKey(w, r)
	pref, err := s.prefs.GetOrCreate(ctx, session)
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
		s.respondError(w, r, tool, pref, nil, http.StatusInternalServerError, "internal error")
		return
	}

	raw, files, err := parseRequestForm(r)
	if err != nil {
		s.metrics.RecordError(ctx, tool.Name, "validation")
		s.respondError(w, r, tool, pref, nil, http.StatusBadRequest, "invalid parameters")
		return
	}

	values, err := tool.Schema.Validate(raw, files)
	if err != nil {
		s.metrics.RecordError(ctx, tool.Name, "validation")
		s.respondError(w, r, tool, pref, echoRaw(tool, raw), http.StatusBadRequest, err.Error())
		return
	}

	key := cache.Fingerprint(tool.Name, values)
	result, hit := s.cache.Get(key)
	var duration time.Duration
	if !hit {
		start := time.Now()
		out, err := tool.Run(values)
		duration = time.Since(start)
		if err != nil {
			s.metrics.RecordError(ctx, tool.Name, "transform")
			var terr *tools.TransformError
			msg := "transform failed"
			if errors.As(err, &terr) {
				msg = terr.Err.Error()
			}
			s.respondError(w, r, tool, pref, values, http.StatusBadRequest, msg)
			return
		}
		result = out
		s.cache.Set(key, result)
	}

	// Usage and history count served requests, cached or not.
	if err := s.usage.RecordUse(ctx, tool.Name); err != nil {
		log.Printf("failed to record usage: %v", err)
		s.metrics.RecordError(ctx, tool.Name, "storage")
		s.respondError(w, r, tool, pref, values, http.StatusInternalServerError, "internal error")
		return
	}
	if err := s.history.Append(ctx, &domain.HistoryEntry{
		SessionKey:    session,
		ToolName:      tool.Name,
		Parameters:    historyParams(values),
		ResultPreview: domain.TruncatePreview(previewOf(result)),
	}); err != nil {
		log.Printf("failed to append history: %v", err)
		s.metrics.RecordError(ctx, tool.Name, "storage")
		s.respondError(w, r, tool, pref, values, http.StatusInternalServerError, "internal error")
		return
	}
	s.metrics.RecordInvocation(ctx, tool.Name, hit, duration)

	if isDataRequest(r) {
		envelope := make(map[string]any, len(values)+len(result))
		for k, v := range values {
			envelope[k] = displayValue(v)
		}
		for k, v := range result {
			envelope[k] = v
		}
		writeJSON(w, http.StatusOK, envelope)
		return
	}
	s.renderToolPage(w, r, tool, pref, values, result, "")
}

// parseRequestForm reads url-encoded or multipart bodies, capped at
// maxRequestBody, and returns posted values plus uploaded file bytes keyed
// by field name.
func parseRequestForm(r *http.Request) (map[string][]string, map[string][]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxRequestBody); err != nil {
			return nil, nil, err
		}
		files := make(map[string][]byte)
		if r.MultipartForm != nil {
			for name, headers := range r.MultipartForm.File {
				if len(headers) == 0 {
					continue
				}
				f, err := headers[0].Open()
				if err != nil {
					return nil, nil, err
				}
				data, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					return nil, nil, err
				}
				files[name] = data
			}
		}
		return r.PostForm, files, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, nil, err
	}
	return r.PostForm, nil, nil
}

// respondError answers a failed invocation in the requested mode. Data
// clients get a JSON error object; page clients get the form back with the
// message and their values echoed.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, tool tools.Tool, pref *domain.Preference, values form.Values, status int, msg string) {
	if isDataRequest(r) {
		writeJSONError(w, status, msg)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if values == nil {
		values = defaultValues(tool)
	}
	s.renderToolPageBody(w, r, tool, pref, values, nil, msg)
}

func (s *Server) renderToolPage(w http.ResponseWriter, r *http.Request, tool tools.Tool, pref *domain.Preference, values form.Values, result tools.Result, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.renderToolPageBody(w, r, tool, pref, values, result, errMsg)
}

func (s *Server) renderToolPageBody(w http.ResponseWriter, r *http.Request, tool tools.Tool, pref *domain.Preference, values form.Values, result tools.Result, errMsg string) {
	lang, theme := domain.LanguageChinese, domain.ThemeLight
	favorite := false
	if pref != nil {
		lang, theme = pref.Language, pref.Theme
		for _, f := range pref.FavoriteTools {
			if f == tool.Name {
				favorite = true
				break
			}
		}
	}

	display := make(map[string]any, len(values))
	for k, v := range values {
		display[k] = displayValue(v)
	}

	page := templates.ToolPage(templates.ToolPageData{
		Name:     tool.Name,
		Title:    tool.Title,
		Lang:     lang,
		Theme:    theme,
		Favorite: favorite,
		Fields:   tool.Schema,
		Values:   display,
		Result:   result,
		Error:    errMsg,
	})
	if err := page.Render(r.Context(), w); err != nil {
		log.Printf("failed to render tool page: %v", err)
	}
}

// defaultValues builds the initial page context for a tool's form.
func defaultValues(tool tools.Tool) form.Values {
	values := make(form.Values)
	for _, f := range tool.Schema {
		if f.Default != nil {
			values[f.Name] = f.Default
		}
	}
	if tool.Defaults != nil {
		for k, v := range tool.Defaults() {
			values[k] = v
		}
	}
	return values
}

// echoRaw overlays posted strings onto the defaults so a rejected form comes
// back with what the user typed.
func echoRaw(tool tools.Tool, raw map[string][]string) form.Values {
	values := defaultValues(tool)
	for _, f := range tool.Schema {
		if f.Kind == form.File {
			continue
		}
		if vs, ok := raw[f.Name]; ok && len(vs) > 0 {
			values[f.Name] = vs[0]
		}
	}
	return values
}

// historyParams snapshots the validated inputs for the history log, with
// file bytes reduced to a size note.
func historyParams(values form.Values) map[string]any {
	params := make(map[string]any, len(values))
	for k, v := range values {
		params[k] = displayValue(v)
	}
	return params
}

// previewOf picks the most representative output field for history previews.
func previewOf(result tools.Result) string {
	for _, key := range []string{"result", "diff"} {
		if v, ok := result[key]; ok {
			return asString(v)
		}
	}
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	min := keys[0]
	for _, k := range keys[1:] {
		if k < min {
			min = k
		}
	}
	return asString(result[min])
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
