package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweep.log")

	log, closer, err := New(path, "debug")
	require.NoError(t, err)

	log.WithField("seed", 42).Debug("mines placed")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "mines placed")
	assert.Contains(t, string(content), "seed=42")
}

func TestNewDiscardsWithoutPath(t *testing.T) {
	log, closer, err := New("", "info")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.False(t, log.IsLevelEnabled(logrus.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)
}
