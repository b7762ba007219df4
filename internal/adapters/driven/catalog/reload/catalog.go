// Package reload serves a file-backed catalog and swaps in a freshly
// loaded copy whenever the file changes on disk.
//
// Each loaded catalog is immutable. A reload replaces the whole snapshot
// atomically, so a request sees either the old or the new catalog, never
// a mix. A file that fails to load leaves the previous snapshot in place.
package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
	"github.com/custodia-labs/whistler-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/whistler-mcp/internal/logger"
)

// DefaultDebounce groups the burst of events an editor save produces.
const DefaultDebounce = 250 * time.Millisecond

// LoadFunc reads a catalog file.
type LoadFunc func(ctx context.Context, path string) (*memory.Catalog, error)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is a driven.Catalog backed by a file that may change.
type Catalog struct {
	path     string
	load     LoadFunc
	debounce time.Duration
	current  atomic.Pointer[memory.Catalog]
	reloads  atomic.Int64
}

// New loads path once and returns a catalog that can reload it.
func New(ctx context.Context, path string, load LoadFunc) (*Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog path: %w", err)
	}

	initial, err := load(ctx, abs)
	if err != nil {
		return nil, err
	}

	c := &Catalog{path: abs, load: load, debounce: DefaultDebounce}
	c.current.Store(initial)
	return c, nil
}

// WithDebounce sets how long Watch waits for events to settle.
func (c *Catalog) WithDebounce(d time.Duration) *Catalog {
	c.debounce = d
	return c
}

// Path returns the absolute catalog path.
func (c *Catalog) Path() string {
	return c.path
}

// Reloads returns how many reloads succeeded.
func (c *Catalog) Reloads() int64 {
	return c.reloads.Load()
}

// Reload reads the file again. On failure the current catalog stays.
func (c *Catalog) Reload(ctx context.Context) error {
	next, err := c.load(ctx, c.path)
	if err != nil {
		logger.Warn("Keeping previous catalog, reload of %s failed: %v", c.path, err)
		return fmt.Errorf("reloading %s: %w", c.path, err)
	}

	c.current.Store(next)
	c.reloads.Add(1)
	logger.Info("Reloaded catalog from %s (%d properties)", c.path, len(next.Properties()))
	return nil
}

// Watch reloads the catalog after the file is written or replaced, until
// ctx is cancelled. The parent directory is watched so that editors which
// save by renaming a temporary file are picked up.
func (c *Catalog) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(c.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(c.path), err)
	}
	logger.Debug("Watching %s for changes", c.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !c.handleEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(c.debounce)
			} else {
				timer.Reset(c.debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Catalog watcher: %v", err)

		case <-fire:
			fire = nil
			_ = c.Reload(ctx)
		}
	}
}

// handleEvent reports whether event should trigger a reload.
func (c *Catalog) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != c.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (c *Catalog) snapshot() *memory.Catalog {
	return c.current.Load()
}

// Properties returns every property in catalog order.
func (c *Catalog) Properties() []domain.Property {
	return c.snapshot().Properties()
}

// Property returns one property or domain.ErrNotFound.
func (c *Catalog) Property(id string) (domain.Property, error) {
	return c.snapshot().Property(id)
}

// Neighborhoods returns every neighborhood in catalog order.
func (c *Catalog) Neighborhoods() []domain.Neighborhood {
	return c.snapshot().Neighborhoods()
}

// Neighborhood returns one neighborhood or domain.ErrNotFound.
func (c *Catalog) Neighborhood(id string) (domain.Neighborhood, error) {
	return c.snapshot().Neighborhood(id)
}

// Platforms returns every booking platform in catalog order.
func (c *Catalog) Platforms() []domain.Platform {
	return c.snapshot().Platforms()
}

// Platform returns one platform or domain.ErrNotFound.
func (c *Catalog) Platform(id string) (domain.Platform, error) {
	return c.snapshot().Platform(id)
}
