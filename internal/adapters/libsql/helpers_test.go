package libsql

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/Mayi21/tool-sites/internal/migrate"
)

var testDBCounter atomic.Int64

// testDB opens a fresh named in-memory database with the full schema
// applied. Each call gets its own database so tests don't see each other's
// rows.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("test%d", testDBCounter.Add(1))
	db, err := sql.Open("libsql", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate.RunAll(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
