package reload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// fileLoader builds a one-property catalog named after the file content.
// Content starting with "bad" fails to load.
func fileLoader(_ context.Context, path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(string(data))
	if strings.HasPrefix(name, "bad") {
		return nil, errors.New("malformed catalog")
	}
	return memory.New(
		[]domain.Property{{
			ID: "cabin", Name: name, Type: domain.PropertyTypeCabin,
			Bedrooms: 1, Bathrooms: 1, MaxGuests: 2, MinimumStay: 1,
		}},
		[]domain.Neighborhood{{ID: "nordic", Name: "Nordic"}},
		[]domain.Platform{{ID: "vrbo", Name: "VRBO"}},
	)
}

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newCatalog(t *testing.T, content string) (*Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	writeCatalog(t, path, content)

	c, err := New(context.Background(), path, fileLoader)
	require.NoError(t, err)
	return c, path
}

func propertyName(t *testing.T, c *Catalog) string {
	t.Helper()
	p, err := c.Property("cabin")
	require.NoError(t, err)
	return p.Name
}

func TestNew(t *testing.T) {
	c, path := newCatalog(t, "first")

	assert.Equal(t, path, c.Path())
	assert.True(t, filepath.IsAbs(c.Path()))
	assert.Equal(t, "first", propertyName(t, c))
	assert.Len(t, c.Properties(), 1)
	assert.Len(t, c.Neighborhoods(), 1)
	assert.Len(t, c.Platforms(), 1)
	assert.Equal(t, int64(0), c.Reloads())

	_, err := c.Neighborhood("nordic")
	assert.NoError(t, err)
	_, err = c.Platform("vrbo")
	assert.NoError(t, err)
	_, err = c.Property("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNew_LoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	writeCatalog(t, path, "bad")

	_, err := New(context.Background(), path, fileLoader)

	require.Error(t, err)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing.toml"), fileLoader)

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReload(t *testing.T) {
	t.Run("swaps in the new catalog", func(t *testing.T) {
		c, path := newCatalog(t, "first")
		writeCatalog(t, path, "second")

		require.NoError(t, c.Reload(context.Background()))

		assert.Equal(t, "second", propertyName(t, c))
		assert.Equal(t, int64(1), c.Reloads())
	})

	t.Run("keeps the previous catalog on failure", func(t *testing.T) {
		c, path := newCatalog(t, "first")
		writeCatalog(t, path, "bad edit")

		err := c.Reload(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reloading")
		assert.Equal(t, "first", propertyName(t, c))
		assert.Equal(t, int64(0), c.Reloads())
	})
}

func TestHandleEvent(t *testing.T) {
	c, path := newCatalog(t, "first")
	other := filepath.Join(filepath.Dir(path), "notes.txt")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"write and chmod", fsnotify.Event{Name: path, Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"rename away", fsnotify.Event{Name: path, Op: fsnotify.Rename}, false},
		{"other file", fsnotify.Event{Name: other, Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.handleEvent(tt.event))
		})
	}
}

func TestWatch(t *testing.T) {
	c, path := newCatalog(t, "first")
	c.WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var watchErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		watchErr = c.Watch(ctx)
	}()

	// The watcher may not be registered yet, so keep rewriting until the
	// change is seen.
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("second"), 0o600); err != nil {
			return false
		}
		p, err := c.Property("cabin")
		return err == nil && p.Name == "second"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	wg.Wait()
	assert.NoError(t, watchErr)
	assert.GreaterOrEqual(t, c.Reloads(), int64(1))
}

func TestWatch_MissingDirectory(t *testing.T) {
	c, path := newCatalog(t, "first")
	require.NoError(t, os.RemoveAll(filepath.Dir(path)))

	err := c.Watch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}
