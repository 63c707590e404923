package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds every setting the backend reads from the environment.
// Keys are the lowercased environment variable names, e.g. DATABASE_URL -> database_url.
type Config struct {
	Env                 string   `koanf:"env" validate:"required"`
	Port                string   `koanf:"port" validate:"required,numeric"`
	APIPrefix           string   `koanf:"api_prefix" validate:"required,startswith=/"`
	DatabaseURL         string   `koanf:"database_url" validate:"required"`
	DBName              string   `koanf:"db_name" validate:"required"`
	DatabaseReplicaURLs []string `koanf:"database_replica_urls"`
	CORSOrigins         string   `koanf:"cors_origins" validate:"required"`
	ReadTimeoutSeconds  int      `koanf:"read_timeout_seconds" validate:"gt=0"`
	WriteTimeoutSeconds int      `koanf:"write_timeout_seconds" validate:"gt=0"`
	IdleTimeoutSeconds  int      `koanf:"idle_timeout_seconds" validate:"gt=0"`
	LogLevel            string   `koanf:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	AdminAPIToken       string   `koanf:"admin_api_token"`

	GenerateQueries      bool `koanf:"generate_queries"`
	GenerateColumnReport bool `koanf:"generate_column_report"`
}

// Default returns the configuration used for every key the environment leaves unset.
func Default() Config {
	return Config{
		Env:                 "development",
		Port:                "8080",
		APIPrefix:           "/api",
		DBName:              "agency_website",
		CORSOrigins:         "*",
		ReadTimeoutSeconds:  180,
		WriteTimeoutSeconds: 180,
		IdleTimeoutSeconds:  180,
		LogLevel:            "info",
	}
}

// Load reads the process environment (and a .env file, when present) on top of Default.
func Load() (Config, error) {
	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		key = strings.ToLower(key)
		if key == "database_replica_urls" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.APIPrefix = strings.TrimSpace(c.APIPrefix)
	if len(c.APIPrefix) > 1 {
		c.APIPrefix = strings.TrimRight(c.APIPrefix, "/")
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	replicas := c.DatabaseReplicaURLs[:0]
	for _, replica := range c.DatabaseReplicaURLs {
		if replica = strings.TrimSpace(replica); replica != "" {
			replicas = append(replicas, replica)
		}
	}
	c.DatabaseReplicaURLs = replicas
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port)
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}
