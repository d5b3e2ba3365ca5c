package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_KEY_STRATEGY", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()

	assert.False(t, cfg.Enabled) // opt-in
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "route_query", cfg.KeyStrategy)
}

func TestLoadCacheConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "2m")

	cfg := LoadCacheConfig()

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.True(t, cfg.Methods["HEAD"])
	assert.Equal(t, 2*time.Minute, cfg.TTL)
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-5")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()

	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	// TTL is raised so idle buckets survive a few refill cycles.
	assert.Equal(t, 5*time.Second, cfg.TTL)
}

func TestRedisAddrHostPortOverridesAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "shorthand:1111")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	assert.Equal(t, "cache:6380", redisAddr())
}

func TestRedisAddrFallsBackToShorthand(t *testing.T) {
	t.Setenv("REDIS_ADDR", "shorthand:1111")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "") // incomplete pair keeps the shorthand

	assert.Equal(t, "shorthand:1111", redisAddr())
}

func TestRedisAddrDefault(t *testing.T) {
	for _, k := range []string{"REDIS_ADDR", "REDIS_HOST", "REDIS_PORT"} {
		t.Setenv(k, "")
	}
	assert.Equal(t, "localhost:6379", redisAddr())
}

func TestEnvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, envBool("FLAG", false))

	t.Setenv("FLAG", "off")
	assert.False(t, envBool("FLAG", true))

	t.Setenv("FLAG", "maybe")
	assert.True(t, envBool("FLAG", true)) // unparseable keeps the default
}
