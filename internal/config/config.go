package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Port            string
	DatabaseURL     string
	SessionTTL      time.Duration
	LoginRatePerMin int
	ViewsDir        string
}

// Load returns application config populated from environment variables
// with sensible defaults. DATABASE_URL has no default on purpose; the
// db package fatals when it is missing.
func Load() App {
	return App{
		Port:            getEnv("PORT", "5050"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SessionTTL:      durationEnv("SESSION_TTL", 6*time.Hour),
		LoginRatePerMin: intEnv("LOGIN_RATE_PER_MIN", 30),
		ViewsDir:        getEnv("VIEWS_DIR", "./views"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
		return fallback
	}
	return d
}

func intEnv(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("invalid int for %s: %v, using fallback %d", key, err, fallback)
		return fallback
	}
	return parsed
}
