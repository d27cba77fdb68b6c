package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the portal.
type Config struct {
	APIBaseURL string // base URL of the healthcare marketplace API
	Port       string
	RedisAddr  string
}

// Load reads .env (if present) and builds the config from environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Port:       getEnv("PORT", "3000"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
