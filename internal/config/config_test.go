package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("API_BASE_URL", "https://shop.example/api")
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("STATE_PATH", "/tmp/sportshop-test")
		t.Setenv("REDIS_ADDR", "redis.local:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "30")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "https://shop.example/api", cfg.APIBaseURL)
		assert.Equal(t, "redis", cfg.StoreBackend)
		assert.Equal(t, "/tmp/sportshop-test", cfg.StatePath)
		assert.Equal(t, "redis.local:6379", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://shop.example/api")
		t.Setenv("STATE_PATH", "/tmp/sportshop-test")
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("REDIS_DB", "")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "")

		cfg := LoadConfig()

		assert.Equal(t, "file", cfg.StoreBackend)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, 0, cfg.RedisDB)
		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	})
}
