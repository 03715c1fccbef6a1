package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no stray .env
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, "std", cfg.JSONEngine)
	assert.Equal(t, int64(1<<20), cfg.MaxValueBytes)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"localhost:2379"}, cfg.EtcdEndpoints)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JSONKV_BACKEND", "etcd")
	t.Setenv("JSONKV_ETCD_ENDPOINTS", " a:2379, b:2379 ,")
	t.Setenv("JSONKV_RATE_LIMIT", "12.5")
	t.Setenv("JSONKV_JSON_ENGINE", "goccy")
	t.Setenv("JSONKV_DIAL_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"a:2379", "b:2379"}, cfg.EtcdEndpoints)
	assert.Equal(t, 12.5, cfg.RateLimit)
	assert.Equal(t, "goccy", cfg.JSONEngine)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout, "bad durations fall back to the default")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Backend: "memory", JSONEngine: "std", MaxValueBytes: 1}
	}

	c := base()
	require.NoError(t, c.Validate())

	c = base()
	c.Backend = "mysql"
	assert.ErrorContains(t, c.Validate(), "unknown backend")

	c = base()
	c.JSONEngine = "msgpack"
	assert.ErrorContains(t, c.Validate(), "unknown json engine")

	c = base()
	c.Backend = "badger"
	assert.ErrorContains(t, c.Validate(), "JSONKV_DATA_DIR")

	c = base()
	c.Backend = "etcd"
	assert.ErrorContains(t, c.Validate(), "JSONKV_ETCD_ENDPOINTS")

	c = base()
	c.MaxValueBytes = 0
	assert.Error(t, c.Validate())
}
