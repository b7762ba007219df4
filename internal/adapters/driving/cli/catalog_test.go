package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/sqlite"
	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/tomlfile"
)

func TestCatalogExport_TOMLToStdout(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "catalog", "export")
	require.NoError(t, err)

	c, err := tomlfile.Parse([]byte(out))
	require.NoError(t, err)
	assert.Len(t, c.Properties(), 3)
	assert.Len(t, c.Neighborhoods(), 2)
	assert.Len(t, c.Platforms(), 1)
}

func TestCatalogExport_Files(t *testing.T) {
	tests := []struct {
		format string
		file   string
		load   func(path string) (int, error)
	}{
		{"toml", "rentals.toml", func(path string) (int, error) {
			c, err := tomlfile.Load(path)
			if err != nil {
				return 0, err
			}
			return len(c.Properties()), nil
		}},
		{"sqlite", "rentals.db", func(path string) (int, error) {
			c, err := sqlite.LoadCatalog(context.Background(), path)
			if err != nil {
				return 0, err
			}
			return len(c.Properties()), nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			setupTestServices(t)
			path := filepath.Join(t.TempDir(), tt.file)

			out, err := execute(t, "catalog", "export", "--format", tt.format, "--output", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Catalog exported to "+path)

			n, err := tt.load(path)
			require.NoError(t, err)
			assert.Equal(t, 3, n)
		})
	}
}

func TestCatalogExport_Errors(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "catalog", "export", "--format", "sqlite")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output is required")

	_, err = execute(t, "catalog", "export", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "csv"`)
}

func TestCatalogStats(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "catalog", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Properties:    3")
	assert.Contains(t, out, "Neighborhoods: 2")
	assert.Contains(t, out, "Platforms:     1")
}
