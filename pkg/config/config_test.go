package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptionalParses(t *testing.T) {
	dir := t.TempDir()
	data := []byte("runtime:\n  maxComputedDepth: 25\n  verboseErrors: true\nstore:\n  pathKey: router.current\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ripple.yaml"), data, 0o644))

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Runtime.MaxComputedDepth)
	assert.True(t, cfg.Runtime.VerboseErrors)
	assert.Equal(t, "router.current", cfg.Store.PathKey)
}

func TestLoadOptionalRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ripple.yaml"), []byte(":\t not yaml"), 0o644))

	_, err := LoadOptional(dir)
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	resolved, err := Resolve(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxComputedDepth, resolved.MaxComputedDepth)
	assert.False(t, resolved.VerboseErrors)
	assert.Equal(t, "app.path", resolved.PathKey)
}

func TestResolvedRejectsNegativeDepth(t *testing.T) {
	cfg := &Config{Runtime: RuntimeConfig{MaxComputedDepth: -1}}
	_, err := cfg.Resolved()
	assert.Error(t, err)
}
