package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Selection SelectionConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns a libpq-style connection string accepted by pgxpool.ParseConfig.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

// SelectionConfig tunes the per-muscle exercise pool and the primary/secondary mix.
type SelectionConfig struct {
	DefaultLimit     int
	MaxLimit         int
	PoolMultiplier   int
	MinPoolSize      int
	MinimumThreshold int
	PrimaryRatio     float64
	MaxParallel      int
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "workout_builder")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("SELECTION_DEFAULT_LIMIT", 3)
	v.SetDefault("SELECTION_MAX_LIMIT", 20)
	v.SetDefault("SELECTION_POOL_MULTIPLIER", 4)
	v.SetDefault("SELECTION_MIN_POOL_SIZE", 30)
	v.SetDefault("SELECTION_MIN_THRESHOLD", 20)
	v.SetDefault("SELECTION_PRIMARY_RATIO", 0.7)
	v.SetDefault("SELECTION_MAX_PARALLEL", 8)

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Selection: SelectionConfig{
			DefaultLimit:     v.GetInt("SELECTION_DEFAULT_LIMIT"),
			MaxLimit:         v.GetInt("SELECTION_MAX_LIMIT"),
			PoolMultiplier:   v.GetInt("SELECTION_POOL_MULTIPLIER"),
			MinPoolSize:      v.GetInt("SELECTION_MIN_POOL_SIZE"),
			MinimumThreshold: v.GetInt("SELECTION_MIN_THRESHOLD"),
			PrimaryRatio:     v.GetFloat64("SELECTION_PRIMARY_RATIO"),
			MaxParallel:      v.GetInt("SELECTION_MAX_PARALLEL"),
		},
	}

	if err := cfg.Selection.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (s SelectionConfig) Validate() error {
	if s.MaxLimit < 1 {
		return fmt.Errorf("SELECTION_MAX_LIMIT must be >= 1, got %d", s.MaxLimit)
	}
	if s.DefaultLimit < 1 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("SELECTION_DEFAULT_LIMIT must be between 1 and %d, got %d", s.MaxLimit, s.DefaultLimit)
	}
	if s.PrimaryRatio < 0 || s.PrimaryRatio > 1 {
		return fmt.Errorf("SELECTION_PRIMARY_RATIO must be between 0 and 1, got %v", s.PrimaryRatio)
	}
	if s.PoolMultiplier < 1 || s.MinPoolSize < 1 {
		return fmt.Errorf("selection pool sizing must be positive")
	}
	if s.MinimumThreshold < 0 {
		return fmt.Errorf("SELECTION_MIN_THRESHOLD must be >= 0, got %d", s.MinimumThreshold)
	}
	if s.MaxParallel < 1 {
		return fmt.Errorf("SELECTION_MAX_PARALLEL must be >= 1, got %d", s.MaxParallel)
	}
	return nil
}
