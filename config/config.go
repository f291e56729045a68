package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Search SearchConfig
	Cache  CacheConfig
	Model  ModelConfig
	Log    LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds search API configuration
type SearchConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Host            string        `mapstructure:"host"`
	APIKey          string        `mapstructure:"api_key"`
	Limit           int           `mapstructure:"limit"`
	RelatedKeywords bool          `mapstructure:"related_keywords"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RatePerSecond   float64       `mapstructure:"rate_per_second"`
	Burst           int           `mapstructure:"burst"`
}

// CacheConfig holds search response cache configuration.
// A zero TTL disables the cache.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ModelConfig holds classifier training configuration
type ModelConfig struct {
	TestSize float64 `mapstructure:"test_size"`
	Seed     int64   `mapstructure:"seed"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/seeker/")

	// Environment variable settings
	v.SetEnvPrefix("SEEKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads variables from ./.env without overriding ones already set.
// A missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load(".env")
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Search API defaults
	v.SetDefault("search.base_url", "https://google-search74.p.rapidapi.com/")
	v.SetDefault("search.host", "google-search74.p.rapidapi.com")
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.limit", 10)
	v.SetDefault("search.related_keywords", true)
	v.SetDefault("search.timeout", "30s")
	v.SetDefault("search.rate_per_second", 5.0)
	v.SetDefault("search.burst", 5)

	// Cache is off unless a TTL is configured
	v.SetDefault("cache.ttl", "0s")

	// Model defaults
	v.SetDefault("model.test_size", 0.2)
	v.SetDefault("model.seed", 42)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.APIKey == "" {
		return fmt.Errorf("search API key is required (set SEEKER_SEARCH_API_KEY)")
	}

	if config.Search.BaseURL == "" {
		return fmt.Errorf("search base URL is required")
	}

	if config.Search.Limit < 1 || config.Search.Limit > 100 {
		return fmt.Errorf("search limit must be between 1 and 100, got: %d", config.Search.Limit)
	}

	if config.Search.RatePerSecond <= 0 || config.Search.Burst < 1 {
		return fmt.Errorf("search rate and burst must be positive")
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	if config.Model.TestSize < 0 || config.Model.TestSize >= 1 {
		return fmt.Errorf("model test size must be in [0, 1), got: %v", config.Model.TestSize)
	}

	if config.Log.Format != "json" && config.Log.Format != "console" {
		return fmt.Errorf("log format must be 'json' or 'console', got: %s", config.Log.Format)
	}

	return nil
}
