// Package setting loads grouped key/value settings for database
// configuration. A setting file is YAML: map-valued top-level keys are
// groups, scalar top-level keys belong to the default group.
package setting

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultGroup is the group that holds top-level scalar keys.
const DefaultGroup = "default"

// Setting is a parsed setting file: named groups of string key/value pairs.
type Setting struct {
	path   string
	groups map[string]*Group
}

// Group is one named section of a Setting. It implements the
// get/remove contract consumed by sqllog.FromSource.
type Group struct {
	name string
	vals map[string]string
}

// Load reads the setting file at path via viper and splits it into groups.
func Load(path string) (*Setting, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read setting file %s: %w", path, err)
	}

	s := &Setting{path: path, groups: make(map[string]*Group)}
	for key, raw := range v.AllSettings() {
		if sub, ok := raw.(map[string]any); ok {
			g := s.group(key)
			for k, val := range sub {
				g.vals[k] = cast.ToString(val)
			}
			continue
		}
		s.group(DefaultGroup).vals[key] = cast.ToString(raw)
	}
	return s, nil
}

// New returns an empty Setting, useful when configuration is assembled
// programmatically rather than read from a file.
func New() *Setting {
	return &Setting{groups: make(map[string]*Group)}
}

func (s *Setting) group(name string) *Group {
	if name == "" {
		name = DefaultGroup
	}
	g, ok := s.groups[name]
	if !ok {
		g = &Group{name: name, vals: make(map[string]string)}
		s.groups[name] = g
	}
	return g
}

// Path returns the file the Setting was loaded from, or "" for New().
func (s *Setting) Path() string { return s.path }

// Group returns the named group, creating it empty if absent. An empty
// name means the default group.
func (s *Setting) Group(name string) *Group { return s.group(name) }

// Has reports whether the named group was present in the setting file.
func (s *Setting) Has(name string) bool {
	if name == "" {
		name = DefaultGroup
	}
	_, ok := s.groups[name]
	return ok
}

// Groups returns the group names in sorted order.
func (s *Setting) Groups() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// Get returns the value for key and whether it was present.
func (g *Group) Get(key string) (string, bool) {
	v, ok := g.vals[key]
	return v, ok
}

// Remove deletes key from the group and returns the removed value, if any.
func (g *Group) Remove(key string) (string, bool) {
	v, ok := g.vals[key]
	if ok {
		delete(g.vals, key)
	}
	return v, ok
}

// Set stores a value under key, overwriting any existing value.
func (g *Group) Set(key, value string) { g.vals[key] = value }

// Len returns the number of keys in the group.
func (g *Group) Len() int { return len(g.vals) }

// Keys returns the group's keys in sorted order.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.vals))
	for k := range g.vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
