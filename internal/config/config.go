package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

var ErrMissingDatabaseURL = errors.New("database url is required (set DATABASE_URL)")

type Config struct {
	App      AppConfig      `toml:"app"`
	Log      LogConfig      `toml:"log"`
	Database DatabaseConfig `toml:"database"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
}

type AppConfig struct {
	Name      string `toml:"name" env:"APP_NAME"`
	Host      string `toml:"host" env:"APP_HOST"`
	Port      int    `toml:"port" env:"PORT"`
	GinMode   string `toml:"gin_mode" env:"GIN_MODE"`
	ViewsDir  string `toml:"views_dir" env:"VIEWS_DIR"`
	PublicDir string `toml:"public_dir" env:"PUBLIC_DIR"`
}

type LogConfig struct {
	Level int `toml:"level" env:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	URL string `toml:"url" env:"DATABASE_URL"`
}

// RabbitMQConfig controls activity event publication. An empty URL disables it.
type RabbitMQConfig struct {
	URL           string `toml:"url" env:"RABBITMQ_URL"`
	ActivityQueue string `toml:"activity_queue" env:"RABBITMQ_ACTIVITY_QUEUE"`
}

// Load builds the configuration from defaults, an optional TOML file and the
// environment, in that order. An empty path falls back to CONFIG_FILE.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = getEnv("CONFIG_FILE", "configs/config.toml")
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config failed: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// EventsEnabled reports whether activity events should be published.
func (c *Config) EventsEnabled() bool {
	return strings.TrimSpace(c.RabbitMQ.URL) != ""
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.App.Port)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:      "exercise-tracker",
			Host:      "0.0.0.0",
			Port:      3000,
			GinMode:   "release",
			ViewsDir:  "views",
			PublicDir: "public",
		},
		RabbitMQ: RabbitMQConfig{
			ActivityQueue: "exercise.activity",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
