package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_ValidConfig(t *testing.T) {
	configContent := `
env: test
http_server:
  address: ":3000"
  timeout: 15s
  idle_timeout: 90s
redis_connection:
  address: "localhost:6379"
  password: "redis_pass"
  user: "redis_user"
  db: 2
  max_retries: 5
  dial_timeout: 3s
  timeout: 7s
backend_api:
  base_url: "http://localhost:5000/api"
  timeout: 12s
session_store:
  cookie_name: "test_session"
  ttl: 12h
  secure: false
contact_form:
  access_key: "web3forms-key"
`

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		require.NoError(t, os.Setenv("CONFIG_PATH", originalPath))
	}()
	require.NoError(t, os.Setenv("CONFIG_PATH", tmpFile.Name()))

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":3000", cfg.HTTPServer.Address)
	assert.Equal(t, 15*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 90*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisConnection.Address)
	assert.Equal(t, "redis_pass", cfg.RedisConnection.Password)
	assert.Equal(t, "redis_user", cfg.RedisConnection.User)
	assert.Equal(t, 2, cfg.RedisConnection.DB)
	assert.Equal(t, 5, cfg.RedisConnection.MaxRetries)
	assert.Equal(t, 3*time.Second, cfg.RedisConnection.DialTimeout)
	assert.Equal(t, 7*time.Second, cfg.RedisConnection.Timeout)
	assert.Equal(t, "http://localhost:5000/api", cfg.BackendAPI.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.BackendAPI.Timeout)
	assert.Equal(t, "test_session", cfg.SessionStore.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.SessionStore.TTL)
	assert.False(t, cfg.SessionStore.Secure)
	assert.Equal(t, "web3forms-key", cfg.ContactForm.AccessKey)
}

func TestMustLoad_Defaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Remove(tmpFile.Name()))
	}()

	_, err = tmpFile.WriteString("env: local\n")
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		require.NoError(t, os.Setenv("CONFIG_PATH", originalPath))
	}()
	require.NoError(t, os.Setenv("CONFIG_PATH", tmpFile.Name()))

	cfg := MustLoad()

	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "stl_session", cfg.SessionStore.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionStore.TTL)
	assert.True(t, cfg.SessionStore.Secure)
	assert.Equal(t, "https://success-backnd.onrender.com/api", cfg.BackendAPI.BaseURL)
}
