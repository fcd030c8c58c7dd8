package enumgeninternal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("deref: false\nout: events_gen.go\n"), 0o644)
	require.NoError(t, err)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Deref)
	assert.Equal(t, "events_gen.go", cfg.OutFile)
}

func TestLoadConfigPartial(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("out: events_gen.go\n"), 0o644)
	require.NoError(t, err)

	// Unset keys keep their defaults.
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Deref)
	assert.Equal(t, "events_gen.go", cfg.OutFile)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("deref: [\n"), 0o644)
	require.NoError(t, err)

	_, err = LoadConfig(dir)
	assert.Error(t, err)
}
