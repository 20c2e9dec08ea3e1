package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	ServerHost  string
	ServerPort  string
	Environment string

	// RedirectURL is returned in the signin response for the frontend to
	// navigate to after a successful login.
	RedirectURL string

	MailEnabled  bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	RedisURL          string
	RateLimitEnabled  bool
	RateLimitAttempts int
	RateLimitWindow   time.Duration

	LogLevel  string
	LogFormat string

	CORSEnabled        bool
	CORSAllowedOrigins []string
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
	ErrInvalidTTL         = errors.New("invalid JWT_TTL format")
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		ServerHost:  getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8080"),
		Environment: getEnvOrDefault("ENV", "development"),
		RedirectURL: getEnvOrDefault("REDIRECT_URL", "https://www.sparkwave.com.br"),

		MailEnabled:  getEnvOrDefaultBool("MAIL_ENABLED", false),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvOrDefaultInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "noreply@sparkwave.com"),

		RedisURL:          getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		RateLimitEnabled:  getEnvOrDefaultBool("RATE_LIMIT_ENABLED", false),
		RateLimitAttempts: getEnvOrDefaultInt("RATE_LIMIT_ATTEMPTS", 10),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		CORSEnabled:        getEnvOrDefaultBool("CORS_ENABLED", true),
		CORSAllowedOrigins: splitAndTrim(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttl, err := parseSeconds(getEnvOrDefault("JWT_TTL", "86400"))
	if err != nil {
		return nil, ErrInvalidTTL
	}
	cfg.JWTTTL = ttl

	window, err := parseSeconds(getEnvOrDefault("RATE_LIMIT_WINDOW", "900"))
	if err != nil {
		return nil, ErrInvalidTTL
	}
	cfg.RateLimitWindow = window

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func parseSeconds(value string) (time.Duration, error) {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
