package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional config file
// and environment variables.
type Config struct {
	Env  string `mapstructure:"env"`  // current application environment (local, dev, production)
	Port int    `mapstructure:"port"` // HTTP listen port
	DB   DB     `mapstructure:"database"`
}

// DB contains store-related configuration, including the explicit connection
// pool bounds applied to the database handle.
type DB struct {
	Path            string        `mapstructure:"path"`              // path to the SQLite database file
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // maximum open connections in the pool
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // maximum idle connections kept in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // maximum lifetime of a single connection
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("port", 3000)
	v.SetDefault("database.path", "quiz.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("database.path", "QUIZ_DB_PATH")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return &cfg, nil
}
