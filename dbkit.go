// Package dbkit provides database plumbing utilities: best-effort closing
// of SQL resources, named data-source access, and an explicit configuration
// record for SQL logging and result-handling behavior.
package dbkit

import (
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Close closes a sequence of SQL-related handles in the order given. The
// caller must order arguments by dependency: rows before their statement,
// statement before its connection. Nil elements are skipped, close failures
// are logged at debug level and swallowed, and values without a close
// capability are logged as a warning and skipped. Close never fails.
func Close(objs ...any) {
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		switch c := obj.(type) {
		case io.Closer:
			if err := c.Close(); err != nil {
				log.Debug().Err(err).Msgf("close %T", obj)
			}
		case interface{ Close() }:
			c.Close()
		default:
			log.Warn().Msgf("cannot close %T: not a rows, statement, or connection handle", obj)
		}
	}
}

// DataSourceRegistry hands out data sources by group name. The empty group
// names the default data source.
type DataSourceRegistry interface {
	Get(group string) (*sqlx.DB, error)
}

// DefaultDataSource returns the data source registered under the default
// group. It delegates to the registry without caching or validation.
func DefaultDataSource(reg DataSourceRegistry) (*sqlx.DB, error) {
	return reg.Get("")
}

// DataSource returns the data source registered under the named group.
func DataSource(reg DataSourceRegistry, group string) (*sqlx.DB, error) {
	return reg.Get(group)
}
