package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `env:
  env: test
  serviceName: wholesale
  debug: true
  log:
    pretty: false
    level: debug
http:
  port: 9090
  timeouts:
    readTimeout: 30s
    writeTimeout: 45s
secretKey:
  access: yaml-access-secret
  refresh: yaml-refresh-secret
auth:
  bcryptCost: 10
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FromYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "wholesale", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, 45*time.Second, cfg.HTTP.Timeouts.WriteTimeout)
	assert.Equal(t, "yaml-access-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeTestConfig(t)

	t.Setenv("SECRETKEY_ACCESS", "env-access-secret")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "env-access-secret", cfg.SecretKey.Access)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	// Untouched values keep their yaml settings.
	assert.Equal(t, "yaml-refresh-secret", cfg.SecretKey.Refresh)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("nonexistent")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "not found")
}
