package config

import (
	chatRepository "SimpleChatbot/internal/api/chat/repository"
	"SimpleChatbot/pkg/nlp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV", "APP_DEBUG", "SESSION_SECRET",
		"KEYWORD_STRATEGY", "RESPONSE_TEMPLATES_PATH", "HISTORY_BACKEND",
		"HISTORY_REDIS_KEY", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.UsesDefaultSecret())
	assert.Equal(t, nlp.StrategyNaive, cfg.KeywordStrategy)
	assert.Equal(t, chatRepository.BackendMemory, cfg.HistoryBackend)
	assert.Equal(t, chatRepository.DefaultRedisKey, cfg.HistoryRedisKey)
	assert.Equal(t, 50.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("KEYWORD_STRATEGY", "TFIDF")
	t.Setenv("HISTORY_BACKEND", "redis")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.UsesDefaultSecret())
	assert.Equal(t, nlp.StrategyTFIDF, cfg.KeywordStrategy)
	assert.Equal(t, chatRepository.BackendRedis, cfg.HistoryBackend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"debug flag":       {"APP_DEBUG": "maybe"},
		"rate":             {"RATE_LIMIT_RPS": "-1"},
		"burst":            {"RATE_LIMIT_BURST": "zero"},
		"backend":          {"HISTORY_BACKEND": "postgres"},
		"redis no address": {"HISTORY_BACKEND": "redis"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range env {
				t.Setenv(key, value)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
