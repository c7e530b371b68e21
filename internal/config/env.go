package config

import (
	chatRepository "SimpleChatbot/internal/api/chat/repository"
	"SimpleChatbot/internal/middleware"
	"SimpleChatbot/pkg/nlp"
	"SimpleChatbot/pkg/redis"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultSessionSecret = "your-secret-key"

type AppConfig struct {
	Host          string
	Port          string
	Env           string
	Debug         bool
	SessionSecret string

	KeywordStrategy string
	TemplatesPath   string

	HistoryBackend  string
	HistoryRedisKey string
	Redis           redis.Config

	RateLimit middleware.Config
}

// Load reads the application configuration from the environment.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Host:            getEnv("APP_HOST", "0.0.0.0"),
		Port:            getEnv("APP_PORT", "5000"),
		Env:             getEnv("APP_ENV", "development"),
		SessionSecret:   getEnv("SESSION_SECRET", defaultSessionSecret),
		KeywordStrategy: strings.ToLower(getEnv("KEYWORD_STRATEGY", nlp.StrategyNaive)),
		TemplatesPath:   os.Getenv("RESPONSE_TEMPLATES_PATH"),
		HistoryBackend:  strings.ToLower(getEnv("HISTORY_BACKEND", chatRepository.BackendMemory)),
		HistoryRedisKey: getEnv("HISTORY_REDIS_KEY", chatRepository.DefaultRedisKey),
		Redis:           redis.ConfigFromEnv(),
		RateLimit:       middleware.DefaultConfig(),
	}

	debug, err := strconv.ParseBool(getEnv("APP_DEBUG", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_DEBUG value: %w", err)
	}
	cfg.Debug = debug

	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value: %q", raw)
		}
		cfg.RateLimit.RequestsPerSecond = rps
	}

	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST value: %q", raw)
		}
		cfg.RateLimit.Burst = burst
	}

	if err := chatRepository.ValidateBackend(cfg.HistoryBackend); err != nil {
		return nil, err
	}

	if cfg.HistoryBackend == chatRepository.BackendRedis && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("REDIS_ADDRESS is required when HISTORY_BACKEND=redis")
	}

	return cfg, nil
}

func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *AppConfig) UsesDefaultSecret() bool {
	return c.SessionSecret == defaultSessionSecret
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
