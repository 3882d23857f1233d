package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weekendly.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig     `split_words:"true"`
	Weather     WeatherConfig    `split_words:"true"`
	Gemini      GeminiConfig     `split_words:"true"`
	Storage     StorageConfig    `split_words:"true"`
	Suggestions SuggestionConfig `split_words:"true"`
	Scheduler   SchedulerConfig  `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// WeatherConfig contains settings for the OpenWeatherMap service
type WeatherConfig struct {
	APIKey          string `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL         string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	DefaultCity     string `envconfig:"WEATHER_DEFAULT_CITY" default:"London"`
	TimeoutSeconds  int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	CacheTTLMinutes int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
}

// GeminiConfig contains settings for the generative suggestion service.
// An empty API key disables the generative provider; suggestions then come
// from the curated table only.
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
}

// StorageType identifies the plan persistence backend
type StorageType string

const (
	StorageTypeMemory   StorageType = "memory"
	StorageTypeRedis    StorageType = "redis"
	StorageTypeDatabase StorageType = "database"
)

// StorageConfig contains plan persistence settings
type StorageConfig struct {
	Type     StorageType    `envconfig:"STORAGE_TYPE" default:"memory"`
	Redis    RedisConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT_SECONDS" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT_SECONDS" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT_SECONDS" default:"3"`
}

// DatabaseConfig contains database connection settings. The sqlite driver
// uses Path; postgres builds a DSN from the remaining fields.
type DatabaseConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path     string `envconfig:"DB_PATH" default:"weekendly.db"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weekendly"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted postgres connection string
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// SuggestionConfig contains suggestion generation settings
type SuggestionConfig struct {
	MaxSuggestions int `envconfig:"MAX_SUGGESTIONS" default:"4"`
}

// SchedulerConfig contains settings for background jobs
type SchedulerConfig struct {
	WeatherRefreshMinutes int  `envconfig:"WEATHER_REFRESH_MINUTES" default:"30"`
	EnableWeatherRefresh  bool `envconfig:"ENABLE_WEATHER_REFRESH" default:"true"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Suggestions.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks weather API configuration
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL must start with http:// or https://", nil)
	}
	if w.DefaultCity == "" {
		return errors.NewConfigurationError("WEATHER_DEFAULT_CITY cannot be empty", nil)
	}
	if w.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be at least 1", nil)
	}
	if w.CacheTTLMinutes < 0 {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES cannot be negative", nil)
	}
	return nil
}

// Validate checks storage configuration
func (s *StorageConfig) Validate() error {
	switch s.Type {
	case StorageTypeMemory:
		return nil
	case StorageTypeRedis:
		return s.Redis.Validate()
	case StorageTypeDatabase:
		return s.Database.Validate()
	default:
		return errors.NewConfigurationError(
			fmt.Sprintf("STORAGE_TYPE must be one of: memory, redis, database (got %q)", s.Type), nil)
	}
}

// Validate checks redis configuration
func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty", nil)
	}
	if r.DB < 0 {
		return errors.NewConfigurationError("REDIS_DB cannot be negative", nil)
	}
	return nil
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty for the sqlite driver", nil)
		}
	case "postgres":
		if d.Host == "" {
			return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
		}
		if d.Port < 1 || d.Port > 65535 {
			return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
		}
		if d.User == "" {
			return errors.NewConfigurationError("DB_USER cannot be empty", nil)
		}
		if d.Name == "" {
			return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
		}
		if err := d.validateSSLMode(); err != nil {
			return err
		}
	default:
		return errors.NewConfigurationError(
			fmt.Sprintf("DB_DRIVER must be sqlite or postgres (got %q)", d.Driver), nil)
	}
	return nil
}

func (d *DatabaseConfig) validateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks suggestion configuration
func (s *SuggestionConfig) Validate() error {
	if s.MaxSuggestions < 1 {
		return errors.NewConfigurationError("MAX_SUGGESTIONS must be at least 1", nil)
	}
	return nil
}

// Validate checks scheduler configuration
func (s *SchedulerConfig) Validate() error {
	if s.WeatherRefreshMinutes < 1 {
		return errors.NewConfigurationError("WEATHER_REFRESH_MINUTES must be at least 1 minute", nil)
	}
	if s.WeatherRefreshMinutes > 1440 {
		return errors.NewConfigurationError("WEATHER_REFRESH_MINUTES cannot exceed 1440 minutes (24 hours)", nil)
	}
	return nil
}
