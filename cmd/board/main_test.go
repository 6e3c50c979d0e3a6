package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultConfigIgnoresEnvironment(t *testing.T) {
	t.Setenv("BOARD_STORAGE_NAMESPACE", "fromenv")
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")

	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "architectpro")
	assert.NotContains(t, string(data), "fromenv")
}

func TestWriteDefaultConfigKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  namespace: mine\n"), 0o644))

	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "storage:\n  namespace: mine\n", string(data))
}
