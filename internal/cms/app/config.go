package app

import (
	"os"
	"time"
)

type Config struct {
	SessionSecret string // Required: HMAC secret for session tokens

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./voyage.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                string        // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	AdminEmail    string // Seeding only: admin account email (default: admin@example.com)
	AdminName     string // Seeding only: admin display name (default: Admin User)
	AdminPassword string // Seeding only: admin password (default: admin123)
}

func LoadConfig() Config {
	return Config{
		SessionSecret: os.Getenv("CMS_SESSION_SECRET"),

		DatabaseFile:        getEnvOrDefault("CMS_DATABASE_FILE", "voyage.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvOrDefault("PORT", "8080"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		AdminEmail:    getEnvOrDefault("CMS_ADMIN_EMAIL", "admin@example.com"),
		AdminName:     getEnvOrDefault("CMS_ADMIN_NAME", "Admin User"),
		AdminPassword: getEnvOrDefault("CMS_ADMIN_PASSWORD", "admin123"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
