package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "whole-token", cfg.Engine.Variant)
	assert.Equal(t, 100, cfg.Engine.VectorDim)
	assert.Equal(t, 5, cfg.Engine.WindowSize)
	assert.Equal(t, 1, cfg.Engine.MinCount)
	assert.Equal(t, 15, cfg.Engine.Epochs)
	assert.Equal(t, 0.3, cfg.Engine.Threshold)
	assert.Equal(t, int64(1), cfg.Engine.Seed)
	assert.Equal(t, "faq_data.json", cfg.Catalog.Path)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "engine:\n  variant: subword\n  threshold: 0.5\ncatalog:\n  path: data/duk.json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "subword", cfg.Engine.Variant)
	assert.Equal(t, 0.5, cfg.Engine.Threshold)
	assert.Equal(t, "data/duk.json", cfg.Catalog.Path)
	// Unset fields fall back to defaults.
	assert.Equal(t, 100, cfg.Engine.VectorDim)
	assert.Equal(t, 15, cfg.Engine.Epochs)
}

func TestLoadStopwords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "stopwords:\n  - bankas\n  - prašau\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bankas", "prašau"}, cfg.Stopwords)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Engine.Variant = "subword"
	cfg.Engine.Seed = 99

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
