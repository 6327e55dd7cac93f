package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds the application configuration, populated from environment
// variables (optionally loaded from .env by the entry points).
type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogFile     string // empty = stderr
}

type CatalogConfig struct {
	Source   string        // json, yaml, xlsx, postgres, http
	Path     string        // file sources
	URL      string        // http source
	PageSize int           // 0 = use the data source's value
	CacheTTL time.Duration // snapshot cache TTL on the dataset server
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Catalog"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogFile:     getEnv("LOG_FILE", ""),
		},
		Catalog: CatalogConfig{
			Source:   strings.ToLower(getEnv("CATALOG_SOURCE", "json")),
			Path:     getEnv("CATALOG_PATH", "data/catalog.json"),
			URL:      getEnv("CATALOG_URL", "http://localhost:8080"),
			PageSize: getEnvInt("CATALOG_PAGE_SIZE", 0),
			CacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment, validation.Required, validation.In("development", "staging", "production", "test")),
		validation.Field(&c.App.Port, validation.Required, is.Port),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	cat := &c.Catalog
	if err := validation.ValidateStruct(cat,
		validation.Field(&cat.Source, validation.Required, validation.In("json", "yaml", "xlsx", "postgres", "http")),
		validation.Field(&cat.Path, validation.When(isFileSource(cat.Source), validation.Required)),
		validation.Field(&cat.URL, validation.When(cat.Source == "http", validation.Required, is.URL)),
		validation.Field(&cat.PageSize, validation.Min(0)),
		validation.Field(&cat.CacheTTL, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := validation.ValidateStruct(&c.Redis,
		validation.Field(&c.Redis.Host, validation.When(c.Redis.Enabled, validation.Required)),
		validation.Field(&c.Redis.DB, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	return nil
}

func isFileSource(source string) bool {
	switch source {
	case "json", "yaml", "xlsx":
		return true
	}
	return false
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
