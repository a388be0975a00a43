package config

import (
	"os"
	"time"
)

// Auth delivery modes.
const (
	AuthModeCookie = "cookie"
	AuthModeBearer = "bearer"
)

type Config struct {
	Port        string
	LogLevel    string
	CORSOrigins string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	AuthMode       string // cookie or bearer
	CookieSecure   bool
	CookieSameSite string

	// When set, records live in Postgres instead of process memory.
	DatabaseURL string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:5173"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", "qrtrack"),
		AuthMode:       getEnv("AUTH_MODE", AuthModeCookie),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		CookieSameSite: getEnv("COOKIE_SAMESITE", "Lax"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}

	// Deployments choose between the 7-day and 24-hour session variants here.
	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		ttl = 7 * 24 * time.Hour
	}
	cfg.TokenTTL = ttl

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
