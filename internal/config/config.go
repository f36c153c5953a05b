package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	APIBaseURL    string
	StoreBackend  string // "file" or "redis"
	StatePath     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	HTTPTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        os.Getenv("APP_ENV"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		StoreBackend:  getEnv("STORE_BACKEND", "file"),
		StatePath:     os.Getenv("STATE_PATH"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		HTTPTimeout:   time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is not set")
	}

	if cfg.StatePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("STATE_PATH is not set and home directory is unknown")
		}
		cfg.StatePath = filepath.Join(home, ".sportshop")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid value for %s: %q", key, v)
	}
	return n
}
