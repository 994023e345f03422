package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabh/starter-templates/config"
)

func TestSeedFailsWithoutRedis(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Host: "127.0.0.1", Port: 1, KeyPrefix: "test"}}

	cmd := Command(cfg)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestSeedValidatesRedisSettingsFirst(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Host: "127.0.0.1", Port: 1, DB: 16, KeyPrefix: "test"}}

	cmd := Command(cfg)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
	assert.NotContains(t, err.Error(), "failed to connect to Redis")
}
