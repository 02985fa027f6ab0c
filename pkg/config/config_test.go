package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"KV_LISTEN_ADDR", "KV_LISTEN_PORT", "KV_STORE_PATH", "KV_ADMIN_ADDR", "KV_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultListenPort, cfg.ListenPort)
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.AdminAddr)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "listen_addr: 127.0.0.1\nlisten_port: 4000\nstore_path: /tmp/data.txt\nadmin_addr: :8080\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ListenAddr)
	assert.Equal(t, 4000, cfg.ListenPort)
	assert.Equal(t, "/tmp/data.txt", cfg.StorePath)
	assert.Equal(t, ":8080", cfg.AdminAddr)
	// Unset fields still receive defaults.
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_port: 4000\n"), 0o644))
	t.Setenv("KV_LISTEN_PORT", "5000")
	t.Setenv("KV_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.ListenPort)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_port: [not a port\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_BadPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("KV_LISTEN_PORT", "not-a-number")

	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestConfig_Addr(t *testing.T) {
	cfg := &Config{ListenAddr: "0.0.0.0", ListenPort: 3490}
	assert.Equal(t, "0.0.0.0:3490", cfg.Addr())
}
