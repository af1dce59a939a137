package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectflx/discovery-service/internal/domain"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, -77.7, cfg.Map.MinLng)
	assert.Equal(t, -75.8, cfg.Map.MaxLng)
	assert.Equal(t, 42.0, cfg.Map.MinLat)
	assert.Equal(t, 43.0, cfg.Map.MaxLat)
	assert.Equal(t, 7.0, cfg.Map.MinZoom)
	assert.Equal(t, 15.0, cfg.Map.MaxZoom)
	assert.Equal(t, 12.0, cfg.Map.SelectZoom)
	assert.Equal(t, 500, cfg.Map.TransitionMS)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nLOG_LEVEL=debug\nMAP_SELECT_ZOOM=13\nSESSION_TTL=60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 13.0, cfg.Map.SelectZoom)
	assert.Equal(t, time.Minute, cfg.Session.TTL)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "POSTGRES")
	t.Setenv("DB_NAME", "flx")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=flx")
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown catalog source", env: map[string]string{"CATALOG_SOURCE": "s3"}},
		{name: "redis store without redis", env: map[string]string{"SESSION_STORE": "redis"}},
		{name: "stream without redis", env: map[string]string{"DIRECTIVE_STREAM_ENABLED": "true"}},
		{name: "inverted bounds", env: map[string]string{"MAP_MIN_LNG": "-70", "MAP_MAX_LNG": "-75"}},
		{name: "inverted zoom", env: map[string]string{"MAP_MIN_ZOOM": "16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile("")
			assert.Error(t, err)
		})
	}
}

func TestMapConfig_MapPolicy(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMapPolicy(), cfg.Map.MapPolicy())
}
