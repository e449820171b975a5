package dbkit

import (
	"github.com/rs/zerolog"

	"github.com/mwarkentin/dbkit/sqllog"
)

// DefaultSettingPath is where connection settings are loaded from unless
// SetSettingPath overrides it.
const DefaultSettingPath = "db.yaml"

// Config carries the toolkit's behavior switches. It is an explicit value
// handed to collaborators (registry, statement logger) at construction
// time rather than hidden process-wide state. Each setter overwrites its
// field unconditionally; fields are independent of each other.
type Config struct {
	// CaseInsensitive governs whether result-row field lookups by name
	// ignore case. Ignored by default.
	CaseInsensitive bool

	// ReturnGeneratedKey governs whether INSERTs report generated primary
	// keys (true) or affected-row counts (false). Some backends cannot
	// report generated keys.
	ReturnGeneratedKey bool

	// SettingPath is the file connection settings are loaded from,
	// absolute or relative to the working directory.
	SettingPath string

	// ShowSQL is the statement-logging tuple.
	ShowSQL sqllog.Options
}

// NewConfig returns a Config with the defaults: case-insensitive lookups,
// generated keys returned, settings read from DefaultSettingPath, SQL
// logging off.
func NewConfig() *Config {
	return &Config{
		CaseInsensitive:    true,
		ReturnGeneratedKey: true,
		SettingPath:        DefaultSettingPath,
		ShowSQL:            sqllog.Default(),
	}
}

// SetCaseInsensitive sets whether field lookups by name ignore case.
func (c *Config) SetCaseInsensitive(v bool) { c.CaseInsensitive = v }

// SetReturnGeneratedKey sets whether INSERTs report generated keys.
func (c *Config) SetReturnGeneratedKey(v bool) { c.ReturnGeneratedKey = v }

// SetSettingPath overrides the connection settings file location.
func (c *Config) SetSettingPath(path string) { c.SettingPath = path }

// SetShowSQL sets the statement-logging tuple directly.
func (c *Config) SetShowSQL(show, format, params bool, level zerolog.Level) {
	c.ShowSQL = sqllog.Options{
		ShowSQL:    show,
		FormatSQL:  format,
		ShowParams: params,
		Level:      level,
	}
}

// SetShowSQLFromSource reads the statement-logging tuple from src,
// removing the show-sql keys from it as they are read. Absent keys fall
// back to the defaults (off, debug level).
func (c *Config) SetShowSQLFromSource(src sqllog.Source) {
	c.ShowSQL = sqllog.FromSource(src)
}
