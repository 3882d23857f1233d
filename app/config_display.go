package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"weekendly.app/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)

	log.Printf("\nWEATHER API:\n")
	log.Printf("  API Key: %s\n", cd.maskString(cfg.Weather.APIKey))
	log.Printf("  Base URL: %s\n", cfg.Weather.BaseURL)
	log.Printf("  Default City: %s\n", cfg.Weather.DefaultCity)
	log.Printf("  Cache TTL: %d minutes\n", cfg.Weather.CacheTTLMinutes)

	log.Printf("\nGEMINI:\n")
	log.Printf("  API Key: %s\n", cd.maskString(cfg.Gemini.APIKey))
	log.Printf("  Model: %s\n", cfg.Gemini.Model)

	log.Printf("\nSTORAGE:\n")
	log.Printf("  Type: %s\n", cfg.Storage.Type)
	switch cfg.Storage.Type {
	case config.StorageTypeRedis:
		log.Printf("  Redis Addr: %s\n", cfg.Storage.Redis.Addr)
		log.Printf("  Redis DB: %d\n", cfg.Storage.Redis.DB)
	case config.StorageTypeDatabase:
		log.Printf("  Driver: %s\n", cfg.Storage.Database.Driver)
		log.Printf("  Host: %s\n", cfg.Storage.Database.Host)
		log.Printf("  Port: %d\n", cfg.Storage.Database.Port)
		log.Printf("  User: %s\n", cfg.Storage.Database.User)
		log.Printf("  Password: %s\n", cd.maskString(cfg.Storage.Database.Password))
		log.Printf("  Name: %s\n", cfg.Storage.Database.Name)
		log.Printf("  SSLMode: %s\n", cfg.Storage.Database.SSLMode)
	}

	log.Printf("\nSUGGESTIONS:\n")
	log.Printf("  Max Suggestions: %d\n", cfg.Suggestions.MaxSuggestions)

	log.Printf("\nSCHEDULER:\n")
	log.Printf("  Weather Refresh Interval: %d minutes\n", cfg.Scheduler.WeatherRefreshMinutes)
	log.Printf("  Weather Refresh Enabled: %t\n", cfg.Scheduler.EnableWeatherRefresh)

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := pair[0]
		value := pair[1]

		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}

		log.Printf("%s=%s\n", key, value)
	}

	log.Println("===============================")
}

// maskString masks sensitive information like passwords and API keys
func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"API_KEY", "PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
