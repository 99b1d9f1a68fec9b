package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "./card", cfg.CardRoot)
	require.Equal(t, DefaultChunkSize, cfg.ChunkSize)
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "listen_addr: \":9090\"\ncard_root: /mnt/card\nchunk_size: 8192\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, "/mnt/card", cfg.CardRoot)
	require.Equal(t, 8192, cfg.ChunkSize)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9090\"\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("CARD_ROOT", "/tmp/over")
	t.Setenv("CHUNK_SIZE", "512")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.ListenAddr)
	require.Equal(t, "/tmp/over", cfg.CardRoot)
	require.Equal(t, 512, cfg.ChunkSize)
}

func TestLoad_InvalidChunkSizeEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CHUNK_SIZE", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_NonPositiveChunkSizeFallsBack(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CHUNK_SIZE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultChunkSize, cfg.ChunkSize)
}
