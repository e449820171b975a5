package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", MemoryDSN(t))
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// MemoryDSN returns an in-memory SQLite DSN unique to the test. It uses a
// file URI with shared cache so all pool connections share the same
// in-memory database; the busy_timeout handles lock contention.
func MemoryDSN(t *testing.T) string {
	t.Helper()
	return "file:" + t.Name() + "?mode=memory&cache=shared&_busy_timeout=5000"
}

// WriteSetting writes a setting file into a temp dir and returns its path.
func WriteSetting(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write setting file: %v", err)
	}
	return path
}
