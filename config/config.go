package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application settings loaded from the environment.
type Config struct {
	// OwnerCode unlocks the owner-only navigation. Empty disables the gate.
	OwnerCode      string
	LogLevel       string
	ExportBaseName string
}

// Load reads the .env file, if any, and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("config: no .env file found, falling back to system env vars")
	}

	return &Config{
		OwnerCode:      getEnv("OWNER_CODE", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ExportBaseName: getEnv("EXPORT_BASENAME", "project_estimate"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
