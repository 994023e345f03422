package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "", cfg.Library.ManifestDir)
	assert.Equal(t, "starterTemplates", cfg.Library.LegacySourceDir)
	assert.Equal(t, "types.ts", cfg.Library.LegacyTypesFile)
	assert.Equal(t, DefaultLegacyTemplateFiles, cfg.Library.LegacyTemplateFiles)
	assert.Equal(t, "migrations", cfg.Library.MigrationsDir)
	assert.False(t, cfg.Library.Strict)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
	assert.Equal(t, "", cfg.Logging.LogDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEGACY_TEMPLATE_FILES", " a.ts, b.ts ,, ")
	t.Setenv("LIBRARY_STRICT", "true")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "library")
	t.Setenv("REDIS_KEY_PREFIX", "acme")
	t.Setenv("LOG_MAX_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"a.ts", "b.ts"}, cfg.Library.LegacyTemplateFiles)
	assert.True(t, cfg.Library.Strict)
	assert.Equal(t, "acme", cfg.Redis.KeyPrefix)
	assert.Equal(t, 100, cfg.Logging.MaxSize)
	assert.Equal(t, "host=localhost port=6543 user=postgres password=postgres dbname=library sslmode=disable", cfg.Database.DSN())
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MIGRATIONS_DIR=db/migrations\n"), 0644))

	// godotenv never overrides a variable that is already set; the Setenv
	// registers the cleanup that removes the loaded value again.
	t.Setenv("MIGRATIONS_DIR", "")
	require.NoError(t, os.Unsetenv("MIGRATIONS_DIR"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db/migrations", cfg.Library.MigrationsDir)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)

	cfg.App.Environment = "qa"
	cfg.Logging.Level = "chatty"
	cfg.Logging.Format = "xml"

	err = cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"APP_ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateIgnoresConnectionSettings(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Database.Port = 0
	cfg.Database.Host = ""
	cfg.Redis.DB = 99

	assert.NoError(t, cfg.Validate())
}

func TestValidateDatabase(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.ValidateDatabase())

	cfg.Database.Port = 0
	cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1
	cfg.Redis.Port = 0

	err = cfg.ValidateDatabase()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "DB_MAX_IDLE_CONNS")
	assert.NotContains(t, err.Error(), "REDIS_PORT")
}

func TestValidateRedis(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.ValidateRedis())

	cfg.Redis.DB = 16
	cfg.Redis.Host = ""
	cfg.Database.Port = 0

	err = cfg.ValidateRedis()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
	assert.Contains(t, err.Error(), "REDIS_HOST")
	assert.NotContains(t, err.Error(), "DB_PORT")
}
