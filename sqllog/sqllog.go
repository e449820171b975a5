// Package sqllog controls whether and how executed SQL statements are
// logged: the show-SQL tuple (show, format, parameters, level) and a
// statement logger that applies it.
package sqllog

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setting keys recognized by FromSource and StripKeys.
const (
	KeyShowSQL    = "show-sql"
	KeyFormatSQL  = "format-sql"
	KeyShowParams = "show-params"
	KeySQLLevel   = "sql-level"
)

// DefaultLevel is used when sql-level is absent or unrecognized.
const DefaultLevel = zerolog.DebugLevel

// Source is a mutable key/value configuration source. Reading show-SQL
// options through FromSource removes the keys so the source can be handed
// on (e.g. to a pool opener) without leaking display-only settings.
type Source interface {
	Get(key string) (string, bool)
	Remove(key string) (string, bool)
}

// Options is the show-SQL tuple.
type Options struct {
	ShowSQL    bool
	FormatSQL  bool
	ShowParams bool
	Level      zerolog.Level
}

// Default returns the zero tuple: nothing shown, debug level.
func Default() Options {
	return Options{Level: DefaultLevel}
}

// FromSource reads the four show-SQL keys from src, removing each as it is
// read. Absent booleans default to false; an absent or unrecognized level
// defaults to debug.
func FromSource(src Source) Options {
	opts := Options{
		ShowSQL:    removeBool(src, KeyShowSQL),
		FormatSQL:  removeBool(src, KeyFormatSQL),
		ShowParams: removeBool(src, KeyShowParams),
		Level:      DefaultLevel,
	}
	if raw, ok := src.Remove(KeySQLLevel); ok {
		opts.Level = ParseLevel(raw)
	}
	log.Debug().
		Bool("show_sql", opts.ShowSQL).
		Bool("format_sql", opts.FormatSQL).
		Bool("show_params", opts.ShowParams).
		Stringer("level", opts.Level).
		Msg("resolved show-sql options")
	return opts
}

// StripKeys removes the four show-SQL keys from src without applying them.
// Used to scrub a group's settings before they reach a pool opener.
func StripKeys(src Source) {
	src.Remove(KeyShowSQL)
	src.Remove(KeyFormatSQL)
	src.Remove(KeyShowParams)
	src.Remove(KeySQLLevel)
}

// ParseLevel maps a level name to a zerolog level, ignoring case.
// Unrecognized names map to the default debug level.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

func removeBool(src Source, key string) bool {
	raw, ok := src.Remove(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
