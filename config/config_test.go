package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Test case 1: Default values - everything has a usable default
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", config.Weather.BaseURL)
		assert.Equal(t, "London", config.Weather.DefaultCity)
		assert.Equal(t, 10, config.Weather.TimeoutSeconds)
		assert.Equal(t, 10, config.Weather.CacheTTLMinutes)
		assert.Equal(t, "", config.Weather.APIKey)
		assert.Equal(t, "gemini-1.5-flash", config.Gemini.Model)
		assert.Equal(t, StorageTypeMemory, config.Storage.Type)
		assert.Equal(t, "localhost:6379", config.Storage.Redis.Addr)
		assert.Equal(t, "sqlite", config.Storage.Database.Driver)
		assert.Equal(t, "weekendly.db", config.Storage.Database.Path)
		assert.Equal(t, 4, config.Suggestions.MaxSuggestions)
		assert.Equal(t, 30, config.Scheduler.WeatherRefreshMinutes)
		assert.True(t, config.Scheduler.EnableWeatherRefresh)
	})

	// Test case 2: Custom values - should use provided values
	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("OPENWEATHER_API_KEY", "test-weather-key"))
		require.NoError(t, os.Setenv("WEATHER_DEFAULT_CITY", "Berlin"))
		require.NoError(t, os.Setenv("GEMINI_API_KEY", "test-gemini-key"))
		require.NoError(t, os.Setenv("GEMINI_MODEL", "gemini-1.5-pro"))
		require.NoError(t, os.Setenv("STORAGE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis.internal:6380"))
		require.NoError(t, os.Setenv("MAX_SUGGESTIONS", "6"))

		config, err := LoadConfig()

		assert.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "test-weather-key", config.Weather.APIKey)
		assert.Equal(t, "Berlin", config.Weather.DefaultCity)
		assert.Equal(t, "test-gemini-key", config.Gemini.APIKey)
		assert.Equal(t, "gemini-1.5-pro", config.Gemini.Model)
		assert.Equal(t, StorageTypeRedis, config.Storage.Type)
		assert.Equal(t, "redis.internal:6380", config.Storage.Redis.Addr)
		assert.Equal(t, 6, config.Suggestions.MaxSuggestions)
	})

	// Test case 3: Invalid values - validation failures surface as errors
	t.Run("InvalidPort", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("SERVER_PORT", "70000"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("InvalidStorageType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("STORAGE_TYPE", "cassandra"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "STORAGE_TYPE")
	})

	t.Run("InvalidBaseURL", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("OPENWEATHER_BASE_URL", "not-a-url"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("InvalidRefreshInterval", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("WEATHER_REFRESH_MINUTES", "0"))

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})
}

func TestDatabaseConfigValidate(t *testing.T) {
	t.Run("SqliteRequiresPath", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "sqlite"}
		assert.Error(t, cfg.Validate())

		cfg.Path = "weekendly.db"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("PostgresRequiresConnectionFields", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:  "postgres",
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "weekendly",
			SSLMode: "disable",
		}
		assert.NoError(t, cfg.Validate())

		cfg.SSLMode = "maybe"
		assert.Error(t, cfg.Validate())
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "oracle"}
		assert.Error(t, cfg.Validate())
	})
}

func TestDatabaseConfigGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "weekendly",
		Password: "secret",
		Name:     "plans",
		SSLMode:  "require",
	}

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "user=weekendly")
	assert.Contains(t, dsn, "dbname=plans")
	assert.Contains(t, dsn, "sslmode=require")
}
