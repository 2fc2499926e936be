package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: storefront
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  access: access-secret
  refresh: refresh-secret
auth:
  bcryptCost: 4
redis:
  addr: localhost:6379
  ttl: 5m
pubsub:
  provider: noop
`

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storefront.yaml"), []byte(sampleYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("PUBSUB_PROVIDER", "rabbitmq")

	cfg, err := LoadWithEnv[Config]("storefront")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "access-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "rabbitmq", cfg.PubSub.Provider)
	assert.Nil(t, cfg.QRCode)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	assert.ErrorContains(t, err, "absent.yaml not found")
}
