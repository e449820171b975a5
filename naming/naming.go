// Package naming resolves names to bound objects, the way a directory
// service hands out data sources registered under well-known names.
package naming

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ErrNotBound is returned when a name has no binding in the resolver.
var ErrNotBound = errors.New("name not bound")

// TypeMismatchError is returned when a name resolves to something other
// than a data source.
type TypeMismatchError struct {
	Name  string
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("naming: %q is bound to %T, not a data source", e.Name, e.Value)
}

// Resolver resolves a name to whatever object is bound under it.
type Resolver interface {
	Lookup(name string) (any, error)
}

// Static is an in-memory Resolver backed by a map.
type Static map[string]any

// Lookup implements Resolver.
func (s Static) Lookup(name string) (any, error) {
	v, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrNotBound)
	}
	return v, nil
}

// DataSource resolves name through r and requires the result to be a
// *sqlx.DB. It fails with the resolver's error on a failed lookup and with
// a *TypeMismatchError when the binding has the wrong type.
func DataSource(r Resolver, name string) (*sqlx.DB, error) {
	v, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	db, ok := v.(*sqlx.DB)
	if !ok {
		return nil, &TypeMismatchError{Name: name, Value: v}
	}
	return db, nil
}

// DataSourceOrNil is the lenient variant of DataSource: on any failure it
// logs the cause at error level and returns nil.
func DataSourceOrNil(r Resolver, name string) *sqlx.DB {
	db, err := DataSource(r, name)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("data source lookup failed")
		return nil
	}
	return db
}
