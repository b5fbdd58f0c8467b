package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	DatabaseURL string
	Port        string
	CatalogDir  string
	RemoteQuota int
	MaxAttempts int
	LogLevel    log.Lvl
}

// Load reads the environment, after merging a .env file when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getEnv("PORT", "8080"),
		CatalogDir:  getEnv("CATALOG_DIR", "./catalog"),
		RemoteQuota: getEnvInt("REMOTE_QUOTA", 2),
		MaxAttempts: getEnvInt("MAX_ATTEMPTS", 100),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Warnf("ignoring %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
