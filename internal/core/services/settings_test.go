package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Get_Stored(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyServerPort:        int64(9000),
		KeyServerCORSOrigins: []any{"https://a.example"},
		KeyServerRateLimit:   int64(0),
		KeyServerRateBurst:   int64(5),
		KeyCatalogSource:     "SQLite",
		KeyCatalogPath:       "/data/catalog.db",
		KeyLogLevel:          "debug",
		KeyLogFormat:         "json",
	})
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 9000, settings.Server.Port)
	assert.Equal(t, []string{"https://a.example"}, settings.Server.CORSOrigins)
	assert.Equal(t, 0.0, settings.Server.RateLimit)
	assert.Equal(t, 5, settings.Server.RateBurst)
	assert.Equal(t, domain.CatalogSourceSQLite, settings.Catalog.Source)
	assert.Equal(t, "/data/catalog.db", settings.Catalog.Path)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "json", settings.Log.Format)
}

func TestSettingsService_Get_FallsBackOnBadValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyServerPort:    "not a number",
		KeyCatalogSource: "postgres",
	})
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 8080, settings.Server.Port)
	assert.Equal(t, domain.CatalogSourceBuiltin, settings.Catalog.Source)
}

func TestSettingsService_Get_CopiesDefaultOrigins(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))

	first, _ := svc.Get()
	first.Server.CORSOrigins[0] = "changed"

	second, _ := svc.Get()
	assert.Equal(t, []string{"*"}, second.Server.CORSOrigins)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.Settings)
	}{
		{KeyServerPort, "9000", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, 9000, s.Server.Port)
		}},
		{KeyServerRateLimit, "2.5", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, 2.5, s.Server.RateLimit)
		}},
		{KeyServerRateBurst, " 3 ", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, 3, s.Server.RateBurst)
		}},
		{KeyServerCORSOrigins, "https://a.example, https://b.example,", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.Server.CORSOrigins)
		}},
		{KeyCatalogSource, "toml", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, domain.CatalogSourceTOML, s.Catalog.Source)
		}},
		{KeyCatalogPath, "/tmp/c.toml", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, "/tmp/c.toml", s.Catalog.Path)
		}},
		{KeyLogLevel, "WARN", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, "warn", s.Log.Level)
		}},
		{KeyLogFormat, "json", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, "json", s.Log.Format)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			svc := NewSettingsService(memory.NewConfigStore(nil))
			require.NoError(t, svc.Set(tt.key, tt.value))

			settings, err := svc.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyServerPort, "eighty"},
		{KeyServerRateLimit, "fast"},
		{KeyCatalogSource, "csv"},
		{KeyLogLevel, "loud"},
		{KeyLogFormat, "xml"},
		{"server.hostname", "example"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore(nil)
			svc := NewSettingsService(store)

			err := svc.Set(tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.Keys())
		})
	}
}

type failingConfigStore struct {
	*memory.ConfigStore
}

func (failingConfigStore) Set(string, any) error {
	return errors.New("disk full")
}

func TestSettingsService_Set_StoreError(t *testing.T) {
	svc := NewSettingsService(failingConfigStore{memory.NewConfigStore(nil)})

	err := svc.Set(KeyServerPort, "9000")
	assert.ErrorContains(t, err, "disk full")
}

func TestSettingsService_KeysAndPath(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))

	keys := svc.Keys()
	assert.Len(t, keys, 8)
	assert.IsIncreasing(t, keys)
	assert.Equal(t, ":memory:", svc.Path())
}
