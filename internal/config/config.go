// Package config loads the seeder's runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned when neither DATABASE_URL nor MONGODB_URI is set.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL (or MONGODB_URI) is required")

// Config holds application configuration values loaded from the environment.
type Config struct {
	Port            string `mapstructure:"PORT"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	Env             string `mapstructure:"APP_ENV"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	AllowedOrigins  string `mapstructure:"ALLOWED_ORIGINS"`
	SeedMaxParallel int    `mapstructure:"SEED_MAX_PARALLEL"`
}

// LoadConfig reads configuration from environment variables.
// Call godotenv.Load beforehand if values live in a .env file.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_DATABASE", "")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SEED_MAX_PARALLEL", -1)

	// MONGODB_URI is accepted for older deployments.
	if err := v.BindEnv("DATABASE_URL", "DATABASE_URL", "MONGODB_URI"); err != nil {
		return nil, fmt.Errorf("bind DATABASE_URL: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate ensures required values are present and in range.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if len(c.Origins()) == 0 {
		return errors.New("ALLOWED_ORIGINS must list at least one origin")
	}
	if c.SeedMaxParallel == 0 || c.SeedMaxParallel < -1 {
		return fmt.Errorf("SEED_MAX_PARALLEL must be -1 or positive, got %d", c.SeedMaxParallel)
	}
	return nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Origins splits ALLOWED_ORIGINS into a clean list.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
