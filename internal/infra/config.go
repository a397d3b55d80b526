package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// InsecureSessionSecret is the placeholder used when SESSION_SECRET is unset.
// Deployments must override it; main logs a warning when it is in effect.
const InsecureSessionSecret = "change_this_default_secret"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv       string
	Port         string
	DatabasePath string

	AdminUsername string
	AdminPassword string

	SessionSecret string
	SessionTTL    time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string

	GeoIPDBPath string

	OutboxSweepEvery  time.Duration
	OutboxMaxAttempts int

	HTTPReadTimeout       time.Duration
	HTTPReadHeaderTimeout time.Duration
	HTTPWriteTimeout      time.Duration
	HTTPIdleTimeout       time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "5000"),
		DatabasePath: getEnv("DATABASE_PATH", "donations.db"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SessionSecret: getEnv("SESSION_SECRET", InsecureSessionSecret),
		SessionTTL:    time.Hour * time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 465),
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		GeoIPDBPath: os.Getenv("GEOIP_DB_PATH"),

		OutboxSweepEvery:  time.Second * time.Duration(getEnvInt("OUTBOX_SWEEP_SECONDS", 60)),
		OutboxMaxAttempts: getEnvInt("OUTBOX_MAX_ATTEMPTS", 3),

		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPReadHeaderTimeout: time.Second * time.Duration(getEnvInt("HTTP_READ_HEADER_TIMEOUT_SECONDS", 5)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.AdminUsername == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is required")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
