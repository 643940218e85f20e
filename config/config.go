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
	Port  string
	DBUrl string
	// JWT Configuration
	JWTSecret string
	JWTExpiry time.Duration
	// CORS allow-list; requests without an Origin header always pass
	CORSAllowedOrigins []string
	// Redis Configuration (login rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
	// Seed account (cmd/seed only)
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "3001"),
		DBUrl:     getEnv("DATABASE_URL", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		CORSAllowedOrigins: splitOrigins(
			getEnv("CORS_ALLOWED_ORIGINS", getEnv("CORS_ORIGIN", "http://localhost:3000")),
		),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 5),
		AdminEmail:              getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:           getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:               getEnv("ADMIN_NAME", "Admin User"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authenticated routes will reject every request.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// RateLimitWindow returns the configured window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
