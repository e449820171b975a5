package sqllog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mwarkentin/dbkit/sqllog"
)

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	l := sqllog.New(zerolog.New(&buf), sqllog.Options{Level: zerolog.DebugLevel})

	l.Log("SELECT 1")

	if buf.Len() != 0 {
		t.Errorf("logger with ShowSQL off wrote %q", buf.String())
	}
}

func TestLoggerNilReceiver(t *testing.T) {
	var l *sqllog.Logger
	l.Log("SELECT 1")
}

func TestLoggerShowsStatement(t *testing.T) {
	var buf bytes.Buffer
	l := sqllog.New(zerolog.New(&buf), sqllog.Options{ShowSQL: true, Level: zerolog.InfoLevel})

	l.Log("SELECT * FROM users WHERE id = ?", 42)

	out := buf.String()
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("statement should be logged at the configured level, got %q", out)
	}
	if !strings.Contains(out, "SELECT * FROM users WHERE id = ?") {
		t.Errorf("statement missing from output %q", out)
	}
	if strings.Contains(out, "params") {
		t.Errorf("params should be omitted unless ShowParams is set, got %q", out)
	}
}

func TestLoggerShowsParams(t *testing.T) {
	var buf bytes.Buffer
	l := sqllog.New(zerolog.New(&buf), sqllog.Options{
		ShowSQL:    true,
		ShowParams: true,
		Level:      zerolog.DebugLevel,
	})

	l.Log("INSERT INTO users (name, age) VALUES (?, ?)", "alice", 30)

	out := buf.String()
	if !strings.Contains(out, `\"alice\", 30`) {
		t.Errorf("params missing from output %q", out)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"select with clauses",
			"SELECT id, name FROM users WHERE active = 1 ORDER BY name",
			"SELECT id, name\n    FROM users\n    WHERE active = 1\n    ORDER BY name",
		},
		{
			"collapses whitespace",
			"SELECT *\n\t FROM   t",
			"SELECT *\n    FROM t",
		},
		{"empty", "   ", ""},
		{"no clauses", "PRAGMA journal_mode=WAL", "PRAGMA journal_mode=WAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqllog.Format(tt.in); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
