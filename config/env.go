package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// Catalog
	CatalogFile     string
	WatchCatalog    bool
	CacheTTLSeconds int

	// Admin
	AdminToken string

	// CORS origins allowed for non-GET requests
	CorsOrigins []string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		Port:        getEnvWithDefault("PORT", "8000"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),

		// empty means the catalog compiled into the binary
		CatalogFile:     getEnvWithDefault("CATALOG_FILE", ""),
		WatchCatalog:    getEnvWithDefault("CATALOG_WATCH", "false") == "true",
		CacheTTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 60),

		// reload endpoint is disabled when empty
		AdminToken: getEnvWithDefault("ADMIN_TOKEN", ""),

		CorsOrigins: getEnvAsList("CORS_ORIGINS", []string{
			"http://localhost",
			"http://localhost:3000",
		}),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	values := make([]string, 0)
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
