// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Pipeline  PipelineConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// PipelineConfig holds offer-processing settings.
type PipelineConfig struct {
	DefaultPageSize  int  `env:"PIPELINE_DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize      int  `env:"PIPELINE_MAX_PAGE_SIZE" envDefault:"50"`
	StrictValidation bool `env:"PIPELINE_STRICT_VALIDATION" envDefault:"false"`
}

// RateLimitConfig holds per-client API rate limit settings.
type RateLimitConfig struct {
	Enabled           bool    `env:"RATELIMIT_ENABLED" envDefault:"true"`
	RequestsPerSecond float64 `env:"RATELIMIT_RPS" envDefault:"10"`
	BurstSize         int     `env:"RATELIMIT_BURST" envDefault:"20"`
}

// RedisConfig holds the optional result cache settings.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"5m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate paging bounds
	if cfg.Pipeline.DefaultPageSize < 1 {
		return fmt.Errorf("PIPELINE_DEFAULT_PAGE_SIZE must be positive")
	}
	if cfg.Pipeline.MaxPageSize < cfg.Pipeline.DefaultPageSize {
		return fmt.Errorf("PIPELINE_MAX_PAGE_SIZE (%d) must be at least PIPELINE_DEFAULT_PAGE_SIZE (%d)",
			cfg.Pipeline.MaxPageSize, cfg.Pipeline.DefaultPageSize)
	}

	// Validate rate limit settings
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("RATELIMIT_RPS must be positive")
		}
		if cfg.RateLimit.BurstSize < 1 {
			return fmt.Errorf("RATELIMIT_BURST must be positive")
		}
	}

	// Validate cache settings
	if cfg.Redis.Enabled {
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED is true")
		}
		if cfg.Redis.TTL <= 0 {
			return fmt.Errorf("REDIS_TTL must be positive")
		}
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
