package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "DB_DRIVER: sqlite\nDB_PATH: nutrition.db\nUSDA_IMPORT_CONCURRENCY: \"4\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("USDA_API_KEY", "from-env")
	t.Setenv("DB_DRIVER", "postgres")

	LoadConfig()

	assert.Equal(t, "sqlite", GetConfig("DB_DRIVER"), "yaml wins over env")
	assert.Equal(t, "nutrition.db", GetConfig("DB_PATH"))
	assert.Equal(t, "from-env", GetConfig("USDA_API_KEY"), "env fills empty yaml keys")
	assert.Equal(t, 4, GetConfigInt("USDA_IMPORT_CONCURRENCY", 10))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestLoadConfigFromEnvOnly(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("USDA_REQUEST_TIMEOUT_SECONDS", "abc")

	LoadConfig()

	assert.Equal(t, "9090", GetConfigOrDefault("APP_PORT", "8000"))
	assert.Equal(t, "http://localhost:3000", GetConfigOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"))
	assert.Equal(t, 30, GetConfigInt("USDA_REQUEST_TIMEOUT_SECONDS", 30))
}
