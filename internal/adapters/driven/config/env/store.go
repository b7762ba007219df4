// Package env overlays environment variables on another driven.ConfigStore.
//
// A variable WHISTLER_<SECTION>_<NAME> overrides the key "<section>.<name>",
// lower-cased: WHISTLER_SERVER_CORS_ORIGINS sets "server.cors_origins".
// Variables may also come from .env files, read with godotenv; the process
// environment wins over .env files.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
)

// Prefix is the environment variable prefix for configuration keys.
const Prefix = "WHISTLER_"

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// Store reads overrides from the environment and everything else from base.
// Set and Load go to base; overrides are fixed at construction.
type Store struct {
	base      driven.ConfigStore
	overrides map[string]string
}

// New builds an overlay from environ (KEY=value pairs, as os.Environ
// returns) and the given .env files. Missing .env files are skipped.
func New(base driven.ConfigStore, environ []string, dotenvFiles ...string) (*Store, error) {
	vars := make(map[string]string)

	for _, path := range dotenvFiles {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}

	overrides := make(map[string]string)
	for k, v := range vars {
		if key, ok := KeyFor(k); ok {
			overrides[key] = v
		}
	}

	return &Store{base: base, overrides: overrides}, nil
}

// KeyFor maps a variable name to its configuration key.
// It reports false for variables without the prefix.
func KeyFor(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, Prefix)
	if !ok || rest == "" {
		return "", false
	}
	rest = strings.ToLower(rest)
	section, field, found := strings.Cut(rest, "_")
	if !found || field == "" {
		return section, true
	}
	return section + "." + field, true
}

// Overrides returns the keys set from the environment, sorted.
func (s *Store) Overrides() []string {
	keys := make([]string, 0, len(s.overrides))
	for k := range s.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the override as a string if present, else the base value.
func (s *Store) Get(key string) (any, bool) {
	if v, ok := s.overrides[key]; ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *Store) GetString(key string) string {
	if v, ok := s.overrides[key]; ok {
		return v
	}
	return s.base.GetString(key)
}

// GetInt parses an integer override, or reads base. Unparseable overrides yield 0.
func (s *Store) GetInt(key string) int {
	if v, ok := s.overrides[key]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return s.base.GetInt(key)
}

// GetFloat parses a number override, or reads base.
func (s *Store) GetFloat(key string) float64 {
	if v, ok := s.overrides[key]; ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return s.base.GetFloat(key)
}

// GetBool parses a boolean override ("true", "1", ...), or reads base.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.overrides[key]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	}
	return s.base.GetBool(key)
}

// GetStringSlice splits a comma-separated override, or reads base.
func (s *Store) GetStringSlice(key string) []string {
	v, ok := s.overrides[key]
	if !ok {
		return s.base.GetStringSlice(key)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Keys returns base keys and override keys, sorted and deduplicated.
func (s *Store) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, k := range s.base.Keys() {
		seen[k] = true
		keys = append(keys, k)
	}
	for k := range s.overrides {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Set persists the value in base. An environment override still shadows it.
func (s *Store) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Load reloads base.
func (s *Store) Load() error {
	return s.base.Load()
}

// Path returns the base configuration path.
func (s *Store) Path() string {
	return s.base.Path()
}
