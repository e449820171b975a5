package dbkit_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwarkentin/dbkit"
	"github.com/mwarkentin/dbkit/internal/testutil"
)

type fakeCloser struct {
	name   string
	err    error
	closed *[]string
}

func (f *fakeCloser) Close() error {
	*f.closed = append(*f.closed, f.name)
	return f.err
}

// bareCloser closes without reporting an error, like pgx-style pools.
type bareCloser struct {
	name   string
	closed *[]string
}

func (b *bareCloser) Close() {
	*b.closed = append(*b.closed, b.name)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestCloseOrderAndErrors(t *testing.T) {
	var closed []string
	captureLog(t)

	dbkit.Close(
		&fakeCloser{name: "rows", closed: &closed},
		nil,
		&fakeCloser{name: "stmt", err: errors.New("already closed"), closed: &closed},
		"not closeable",
		&bareCloser{name: "pool", closed: &closed},
		&fakeCloser{name: "conn", closed: &closed},
	)

	want := []string{"rows", "stmt", "pool", "conn"}
	if len(closed) != len(want) {
		t.Fatalf("closed %v, want %v", closed, want)
	}
	for i := range want {
		if closed[i] != want[i] {
			t.Fatalf("closed %v, want %v", closed, want)
		}
	}
}

func TestCloseWarnsOnNonCloseable(t *testing.T) {
	buf := captureLog(t)

	dbkit.Close(42)

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("expected a warning, got %q", out)
	}
	if !strings.Contains(out, "int") {
		t.Fatalf("warning should name the runtime type, got %q", out)
	}
}

func TestCloseEmptyAndAllNil(t *testing.T) {
	dbkit.Close()
	dbkit.Close(nil, nil)
}

func TestCloseSwallowsFailures(t *testing.T) {
	buf := captureLog(t)

	var closed []string
	dbkit.Close(
		&fakeCloser{name: "a", err: errors.New("boom"), closed: &closed},
		&fakeCloser{name: "b", closed: &closed},
	)

	if len(closed) != 2 {
		t.Fatalf("a failing close must not stop later closes: %v", closed)
	}
	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Fatalf("close failure should be logged at debug, got %q", buf.String())
	}
}

// staticRegistry is a map-backed DataSourceRegistry for tests.
type staticRegistry map[string]*sqlx.DB

func (s staticRegistry) Get(group string) (*sqlx.DB, error) {
	if group == "" {
		group = "default"
	}
	db, ok := s[group]
	if !ok {
		return nil, errors.New("no such group")
	}
	return db, nil
}

func TestDataSourceAccessors(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := staticRegistry{"default": db, "analytics": db}

	got, err := dbkit.DefaultDataSource(reg)
	if err != nil {
		t.Fatalf("default data source: %v", err)
	}
	if got != db {
		t.Fatal("default data source should come from the default group")
	}

	got, err = dbkit.DataSource(reg, "analytics")
	if err != nil {
		t.Fatalf("named data source: %v", err)
	}
	if got != db {
		t.Fatal("named data source should come from the named group")
	}

	if _, err := dbkit.DataSource(reg, "missing"); err == nil {
		t.Fatal("expected registry failure to propagate")
	}
}
