package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration
	DatabaseURL string

	// Redis configuration
	RedisURL string

	// Admin configuration
	AdminAPIKey   string
	AdminPageSize int

	// Plan cache configuration
	PlanCacheMinutes int

	ServiceName string
}

var AppConfig *Config

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:             getEnv("PORT", "8080"),
		Mode:             getEnv("GIN_MODE", "debug"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		AdminAPIKey:      getEnv("ADMIN_API_KEY", ""),
		AdminPageSize:    getEnvInt("ADMIN_PAGE_SIZE", 20),
		PlanCacheMinutes: getEnvInt("PLAN_CACHE_MINUTES", 5),
		ServiceName:      getEnv("SERVICE_NAME", "Service Plans"),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
