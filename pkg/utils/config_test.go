package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "venue-booking", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "html", config.App.RenderMode)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.True(t, config.Database.AutoMigrate)
	assert.Equal(t, 15*time.Second, config.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, config.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, config.HTTP.AllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RENDER_MODE", "JSON")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "json", config.App.RenderMode)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.HTTP.AllowedOrigins)
	assert.Equal(t, 30*time.Second, config.HTTP.WriteTimeout)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=venues_test\nDB_USER=booker\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DB_NAME")
		os.Unsetenv("DB_USER")
	})

	config, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "venues_test", config.Database.Name)
	assert.Equal(t, "booker", config.Database.User)
}
