package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("TABLE_PREFIX", "")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	require.Equal(t, "3500", cfg.Port)
	require.Equal(t, "dev", cfg.Environment)
	require.Equal(t, "dev_", cfg.TablePrefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("PORT", "9000")
	t.Setenv("TABLE_PREFIX", "")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "prod_", cfg.TablePrefix)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jotdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"4000\"\nmemory_store: true\n"), 0o644))

	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("PORT", "")
	t.Setenv("CONFIG_FILE", path)

	cfg := Load()
	require.Equal(t, "4000", cfg.Port)
	require.True(t, cfg.MemoryStore)
}

func TestLoad_MalformedOverlayIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jotdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t:::"), 0o644))

	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("PORT", "")
	t.Setenv("CONFIG_FILE", path)

	cfg := Load()
	require.Equal(t, "3500", cfg.Port)
}
