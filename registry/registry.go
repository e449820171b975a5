// Package registry maps group names to lazily opened data sources, using
// connection settings from a setting file.
package registry

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/mwarkentin/dbkit"
	"github.com/mwarkentin/dbkit/setting"
	"github.com/mwarkentin/dbkit/sqllog"
)

// ErrGroupNotFound is returned when no group with the requested name is
// configured.
var ErrGroupNotFound = errors.New("data source group not found")

// Registry opens and caches one *sqlx.DB per configured group. Safe for
// concurrent use.
type Registry struct {
	cfg *dbkit.Config

	mu    sync.Mutex
	set   *setting.Setting
	pools map[string]*sqlx.DB
}

// New returns a Registry that reads connection settings from
// cfg.SettingPath on first use.
func New(cfg *dbkit.Config) *Registry {
	if cfg == nil {
		cfg = dbkit.NewConfig()
	}
	return &Registry{cfg: cfg, pools: make(map[string]*sqlx.DB)}
}

// NewWithSetting returns a Registry backed by an already loaded Setting,
// bypassing cfg.SettingPath.
func NewWithSetting(cfg *dbkit.Config, s *setting.Setting) *Registry {
	r := New(cfg)
	r.set = s
	return r
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() *dbkit.Config { return r.cfg }

// Get returns the data source for the named group, opening it on first
// request and caching it for subsequent ones. The empty group names the
// default group.
func (r *Registry) Get(group string) (*sqlx.DB, error) {
	if group == "" {
		group = setting.DefaultGroup
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.pools[group]; ok {
		return db, nil
	}

	set, err := r.settingLocked()
	if err != nil {
		return nil, err
	}
	if !set.Has(group) {
		return nil, fmt.Errorf("group %q: %w", group, ErrGroupNotFound)
	}

	db, err := openGroup(set.Group(group))
	if err != nil {
		return nil, fmt.Errorf("open group %q: %w", group, err)
	}
	r.pools[group] = db
	return db, nil
}

// Groups returns the group names configured in the setting file.
func (r *Registry) Groups() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.settingLocked()
	if err != nil {
		return nil, err
	}
	return set.Groups(), nil
}

// Close closes every cached data source. Close failures are logged and
// swallowed; the registry can be reused afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for group, db := range r.pools {
		if err := db.Close(); err != nil {
			log.Debug().Err(err).Str("group", group).Msg("close data source")
		}
		delete(r.pools, group)
	}
}

func (r *Registry) settingLocked() (*setting.Setting, error) {
	if r.set != nil {
		return r.set, nil
	}
	set, err := setting.Load(r.cfg.SettingPath)
	if err != nil {
		return nil, err
	}
	r.set = set
	return set, nil
}

// openGroup opens a data source from a group's settings. Display-only
// show-sql keys are stripped first so they never reach the opener.
func openGroup(g *setting.Group) (*sqlx.DB, error) {
	sqllog.StripKeys(g)

	driver, ok := g.Get("driver")
	if !ok {
		return nil, errors.New("missing driver")
	}
	dsn, ok := g.Get("dsn")
	if !ok {
		return nil, errors.New("missing dsn")
	}

	db, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := applyPoolSettings(db, g); err != nil {
		dbkit.Close(db)
		return nil, err
	}
	return db, nil
}

func applyPoolSettings(db *sqlx.DB, g *setting.Group) error {
	if raw, ok := g.Get("max-open-conns"); ok {
		n, err := intValue("max-open-conns", raw)
		if err != nil {
			return err
		}
		db.SetMaxOpenConns(n)
	}
	if raw, ok := g.Get("max-idle-conns"); ok {
		n, err := intValue("max-idle-conns", raw)
		if err != nil {
			return err
		}
		db.SetMaxIdleConns(n)
	}
	if raw, ok := g.Get("conn-max-lifetime"); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid conn-max-lifetime %q: %w", raw, err)
		}
		db.SetConnMaxLifetime(d)
	}
	return nil
}

func intValue(key, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}
