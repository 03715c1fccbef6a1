// Package config loads jsonkvd settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the daemon configuration loaded from environment variables.
type Config struct {
	// Server
	HTTPAddr        string
	LogLevel        string // debug, info, warn, error
	ShutdownTimeout time.Duration

	// Backend selection: memory, ristretto, badger, redis, etcd, rocksdb
	Backend string
	// JSON engine for values: std, goccy, jsoniter
	JSONEngine string

	DataDir       string // badger, rocksdb
	RedisAddr     string
	RedisPrefix   string
	EtcdEndpoints []string
	EtcdPrefix    string
	DialTimeout   time.Duration

	// Request limits
	MaxValueBytes int64
	RateLimit     float64 // requests per second; 0 disables
	RateBurst     int
}

// Load loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:        getEnvOrDefault("JSONKV_HTTP_ADDR", ":8080"),
		LogLevel:        getEnvOrDefault("JSONKV_LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvDurationOrDefault("JSONKV_SHUTDOWN_TIMEOUT", 5*time.Second),
		Backend:         getEnvOrDefault("JSONKV_BACKEND", "memory"),
		JSONEngine:      getEnvOrDefault("JSONKV_JSON_ENGINE", "std"),
		DataDir:         getEnvOrDefault("JSONKV_DATA_DIR", "./kvdb"),
		RedisAddr:       getEnvOrDefault("JSONKV_REDIS_ADDR", "localhost:6379"),
		RedisPrefix:     os.Getenv("JSONKV_REDIS_PREFIX"),
		EtcdEndpoints:   splitList(getEnvOrDefault("JSONKV_ETCD_ENDPOINTS", "localhost:2379")),
		EtcdPrefix:      getEnvOrDefault("JSONKV_ETCD_PREFIX", "/jsonkv/"),
		DialTimeout:     getEnvDurationOrDefault("JSONKV_DIAL_TIMEOUT", 5*time.Second),
		MaxValueBytes:   int64(getEnvIntOrDefault("JSONKV_MAX_VALUE_BYTES", 1<<20)),
		RateLimit:       getEnvFloatOrDefault("JSONKV_RATE_LIMIT", 0),
		RateBurst:       getEnvIntOrDefault("JSONKV_RATE_BURST", 50),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case "memory", "ristretto":
	case "badger", "rocksdb":
		if c.DataDir == "" {
			return fmt.Errorf("JSONKV_DATA_DIR is required for %s backend", c.Backend)
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("JSONKV_REDIS_ADDR is required for redis backend")
		}
	case "etcd":
		if len(c.EtcdEndpoints) == 0 {
			return fmt.Errorf("JSONKV_ETCD_ENDPOINTS is required for etcd backend")
		}
	default:
		return fmt.Errorf("unknown backend: %s (must be memory, ristretto, badger, redis, etcd or rocksdb)", c.Backend)
	}

	switch c.JSONEngine {
	case "std", "goccy", "jsoniter":
	default:
		return fmt.Errorf("unknown json engine: %s (must be std, goccy or jsoniter)", c.JSONEngine)
	}

	if c.MaxValueBytes <= 0 {
		return fmt.Errorf("JSONKV_MAX_VALUE_BYTES must be positive")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("JSONKV_RATE_LIMIT must not be negative")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
