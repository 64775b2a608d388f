package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MINESWEEP_SEED", "")
	t.Setenv("MINESWEEP_LOG_FILE", "")
	t.Setenv("MINESWEEP_LOG_LEVEL", "")
	t.Setenv("HONEYCOMB_MINESWEEP_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, uint32(0x12345678), cfg.Seed)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
	assert.Equal(t, 50, cfg.MineCount)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MINESWEEP_SEED", "0xdeadbeef")
	t.Setenv("MINESWEEP_LOG_FILE", "/tmp/minesweep.log")
	t.Setenv("MINESWEEP_LOG_LEVEL", "debug")
	t.Setenv("HONEYCOMB_MINESWEEP_API_KEY", "key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, uint32(0xdeadbeef), cfg.Seed)
	assert.Equal(t, "/tmp/minesweep.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Telemetry)
}

func TestLoadConfigBadSeed(t *testing.T) {
	for _, v := range []string{"banana", "-1", "4294967296"} {
		t.Setenv("MINESWEEP_SEED", v)
		_, err := LoadConfig()
		assert.Error(t, err, "seed %q", v)
	}
}
