package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwarkentin/dbkit/internal/testutil"
	"github.com/mwarkentin/dbkit/registry"
)

const createWidgets = `-- +goose Up
CREATE TABLE widgets (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- +goose Down
DROP TABLE widgets;
`

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "00001_create_widgets.sql"), []byte(createWidgets), 0o600); err != nil {
		t.Fatalf("write migration: %v", err)
	}

	db := testutil.NewTestDB(t)
	if err := registry.Migrate(db, "sqlite3", os.DirFS(dir)); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	var name string
	err := db.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'widgets'`)
	if err != nil {
		t.Fatalf("widgets table missing after migration: %v", err)
	}
}

func TestMigrateUnknownDriver(t *testing.T) {
	db := testutil.NewTestDB(t)
	if err := registry.Migrate(db, "oracle", os.DirFS(t.TempDir())); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}
