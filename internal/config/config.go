package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	CORSOrigins string
}

// Load reads .env if present, then the environment. Defaults target
// local development: a SQLite file and port 3000.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	return Config{
		DatabaseURL: getenv("DATABASE_URL", "starblog.db"),
		Port:        getenv("PORT", "3000"),
		CORSOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
