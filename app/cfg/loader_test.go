package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	original := Version
	defer func() { Version = original }()

	Version = ""
	assert.Equal(t, "unknown", GetVersion())
}

func TestLoadFromArgs(t *testing.T) {
	defer func() { globalCfg = nil }()

	cfg, err := load([]string{
		"--db-path", "/tmp/test.db",
		"--feeds-dir", "/tmp/feeds",
		"--port", "9090",
		"--worker-count", "3",
		"--api-key", "secret",
		"--parse-cache-ttl", "90s",
		"--timezone", "UTC",
		"--debug",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "/tmp/feeds", cfg.FeedsDir)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, "secret", cfg.APIAccessKey)
	assert.Equal(t, 90*time.Second, cfg.ParseCacheTTL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, GetVersion(), cfg.Version)

	assert.Same(t, cfg, Get())
}

func TestLoadFromEnv(t *testing.T) {
	defer func() { globalCfg = nil }()
	t.Setenv("USER_AGENT", "Env Agent/2.0")

	cfg, err := load([]string{"--timezone", "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "Env Agent/2.0", cfg.UserAgent)
}

func TestLoadRejectsInvalidWorkerCount(t *testing.T) {
	defer func() { globalCfg = nil }()

	_, err := load([]string{"--worker-count", "0", "--timezone", "UTC"})
	assert.Error(t, err)

	_, err = load([]string{"--scheduler-interval", "0", "--timezone", "UTC"})
	assert.Error(t, err)
}

func TestGetPanicsBeforeLoad(t *testing.T) {
	globalCfg = nil
	assert.Panics(t, func() { Get() })
}
