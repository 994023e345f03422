package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/pkg/logger"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	previous := logger.Logger
	t.Cleanup(func() { logger.Logger = previous })

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestRootCommandRunsGenerate(t *testing.T) {
	cfg := loadConfig(t)

	var out bytes.Buffer
	root := RootCommand(cfg)
	root.SetOut(&out)
	root.SetArgs([]string{"--log-level", "warn", "generate", "--stdout"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Contains(t, out.String(), "BEGIN;")
	assert.Contains(t, out.String(), "COMMIT;")
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	cfg := loadConfig(t)

	root := RootCommand(cfg)
	root.SetArgs([]string{"--log-level", "chatty", "generate", "--stdout"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestRootCommandGenerateIgnoresConnectionSettings(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Database.Port = 0
	cfg.Redis.DB = 99

	var out bytes.Buffer
	root := RootCommand(cfg)
	root.SetOut(&out)
	root.SetArgs([]string{"generate", "--stdout"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "COMMIT;")
}

func TestRootCommandConnectingSubcommandsValidateTheirSettings(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Database.Port = 0

	root := RootCommand(cfg)
	root.SetArgs([]string{"apply", "--direct"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")

	cfg = loadConfig(t)
	cfg.Redis.DB = 99

	root = RootCommand(cfg)
	root.SetArgs([]string{"seed-plans"})
	err = root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestRootCommandListsSubcommands(t *testing.T) {
	root := RootCommand(loadConfig(t))

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"generate", "import-legacy", "apply", "seed-plans"})
}
