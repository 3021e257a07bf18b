package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
	ReadOnly       bool
	QueryTimeout   time.Duration
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "")),
		ReadOnly:       getEnv("READ_ONLY", "false") == "true",
		QueryTimeout:   queryTimeout(),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func queryTimeout() time.Duration {
	raw := getEnv("QUERY_TIMEOUT_MS", "5000")
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		log.Printf("ERROR: Invalid QUERY_TIMEOUT_MS %q, using 5000", raw)
		ms = 5000
	}
	return time.Duration(ms) * time.Millisecond
}
