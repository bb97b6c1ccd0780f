package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default().Site.APIURL, cfg.Site.APIURL)
	assert.Equal(t, Default().Client.RateLimit, cfg.Client.RateLimit)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Site.APIURL = "https://test.wikipedia.org/w/api.php"
	cfg.Client.RateLimit = 5
	cfg.SQLite.Path = "/tmp/custom.db"

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://test.wikipedia.org/w/api.php", loaded.Site.APIURL)
	assert.Equal(t, float64(5), loaded.Client.RateLimit)
	assert.Equal(t, "/tmp/custom.db", loaded.SQLite.Path)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, DefaultConfigDir), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, DefaultConfigDir, DefaultConfigFile),
		[]byte("site: [not a mapping"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestStorePath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/base", DefaultConfigDir, DefaultStoreFile), StorePath("/base", cfg))

	cfg.SQLite.Path = "/elsewhere/store.db"
	assert.Equal(t, "/elsewhere/store.db", StorePath("/base", cfg))
}
