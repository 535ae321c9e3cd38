package web

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/Mayi21/tool-sites/internal/adapters/libsql"
	adapterotel "github.com/Mayi21/tool-sites/internal/adapters/otel"
	"github.com/Mayi21/tool-sites/internal/cache"
	"github.com/Mayi21/tool-sites/internal/migrate"
	"github.com/Mayi21/tool-sites/internal/tools"
)

var testDBCounter atomic.Int64

func newTestServer(t *testing.T) (*Server, *libsql.Repositories) {
	t.Helper()

	name := fmt.Sprintf("webtest%d", testDBCounter.Add(1))
	db, err := sql.Open("libsql", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate.RunAll(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repos := libsql.NewRepositories(db)
	srv := NewServer(
		"0",
		tools.NewRegistry(),
		cache.New(time.Minute),
		repos.Preferences,
		repos.History,
		repos.Usage,
		adapterotel.NewNoOpExporter(),
	)
	return srv, repos
}

// doRequest serves one request, carrying the session cookie when given, and
// returns the recorder plus the session cookie for follow-up requests.
func doRequest(t *testing.T, srv *Server, req *http.Request, session *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()

	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	out := session
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			out = c
		}
	}
	return rec, out
}

func postForm(path string, values url.Values, ajax bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	return req
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
