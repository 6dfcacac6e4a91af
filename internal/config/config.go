package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ExeHalah/PlayerInfo/internal/constants"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Regions  []string
	Redis    RedisConfig
	Cache    CacheConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Addr   string
	APIKey string
}

type UpstreamConfig struct {
	PlayerInfoBaseURL string
	WishlistBaseURL   string
	CharacterBaseURL  string
	AssetBaseURL      string
	Timeout           time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:   getEnv("SERVER_ADDR", ":8080"),
			APIKey: getEnv("API_KEY", ""),
		},
		Upstream: UpstreamConfig{
			PlayerInfoBaseURL: getEnv("PLAYER_INFO_BASE_URL", constants.APIConfig.PlayerInfoBaseURL),
			WishlistBaseURL:   getEnv("WISHLIST_BASE_URL", constants.APIConfig.WishlistBaseURL),
			CharacterBaseURL:  getEnv("CHARACTER_BASE_URL", constants.APIConfig.CharacterBaseURL),
			AssetBaseURL:      getEnv("ASSET_BASE_URL", constants.APIConfig.AssetBaseURL),
			Timeout:           time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Regions: parseRegions(getEnv("REGIONS", "")),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			Enabled: getEnvBool("CACHE_ENABLED", false),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if len(c.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// parseRegions returns the configured region allow-list, falling back to
// the canonical shard order when unset. Codes are lowercased so the
// case-insensitive match in the lookup stays a plain comparison.
func parseRegions(value string) []string {
	if value == "" {
		return append([]string(nil), constants.Regions...)
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
