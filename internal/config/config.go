package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Engine     EngineConfig
	Cache      CacheConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver selects the event-store backend: "postgres" or "memory".
	// The memory driver keeps everything in-process and is meant for
	// demos and tests; postgres is the durable default.
	Driver   string         `mapstructure:"driver"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// EngineConfig parameterizes the metrics engine. EventDurationMinutes is
// the inferred occupancy slice D attributed to each state-type event; it
// is injected into the engine rather than hard-coded so alternate duration
// policies can be swapped in without touching aggregation logic.
type EngineConfig struct {
	EventDurationMinutes int `mapstructure:"event_duration_minutes"`
	MaxBatchSize         int `mapstructure:"max_batch_size"`
}

// SliceDuration returns the configured event duration as a time.Duration.
func (c EngineConfig) SliceDuration() time.Duration {
	return time.Duration(c.EventDurationMinutes) * time.Minute
}

type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DashboardTTL time.Duration `mapstructure:"dashboard_ttl"`
}

type MonitoringConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("FLOORHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults. Empty-string defaults register the keys so
	// environment overrides bind during Unmarshal.
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.postgres.host", "")
	viper.SetDefault("database.postgres.port", 5432)
	viper.SetDefault("database.postgres.user", "floorhub")
	viper.SetDefault("database.postgres.password", "")
	viper.SetDefault("database.postgres.dbname", "floorhub")
	viper.SetDefault("database.postgres.sslmode", "disable")

	// Engine defaults
	viper.SetDefault("engine.event_duration_minutes", 5)
	viper.SetDefault("engine.max_batch_size", 1000)

	// Cache defaults
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.host", "localhost")
	viper.SetDefault("cache.port", 6379)
	viper.SetDefault("cache.password", "")
	viper.SetDefault("cache.db", 0)
	viper.SetDefault("cache.dashboard_ttl", "30s")

	// Monitoring defaults
	viper.SetDefault("monitoring.log_level", "info")
}

func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case "postgres":
		if config.Database.Postgres.Host == "" {
			return fmt.Errorf("postgres host is required")
		}
	case "memory":
		// Nothing to validate; the memory driver is self-contained.
	default:
		return fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}
	if config.Engine.EventDurationMinutes <= 0 {
		return fmt.Errorf("engine event_duration_minutes must be positive")
	}
	if config.Engine.MaxBatchSize <= 0 {
		return fmt.Errorf("engine max_batch_size must be positive")
	}
	return nil
}
