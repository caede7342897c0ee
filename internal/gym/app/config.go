package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Addr                string        // HTTP listen address (default: :8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseFile   string // Path to the SQLite database file (default: ./gymdesk.db)
	AutoMigrate    bool   // Apply migrations on start (default: true)
	BaseURL        string // Front end origin that sign-in links point at
	Issuer         string // Issuer claim for session tokens
	Audience       []string
	SigningKeyPath string // Optional: Ed25519 PEM key, created on first start. Empty means ephemeral.
	BootstrapToken string // Optional: enables POST /v1/admins when set

	SessionTTL    time.Duration // Session lifetime (default: 240h)
	LoginTokenTTL time.Duration // Sign-in link lifetime (default: 1h)

	HousekeepingInterval time.Duration // (default: 10m)
	Timezone             string        // IANA zone that month boundaries use (default: UTC)

	SMTP SMTPConfig
}

// SMTPConfig is optional; without a host, mail is logged instead of sent.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadConfig reads the environment, after loading .env from the working
// directory when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Env:       getEnvOrDefault("GYM_ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		Addr:                getEnvOrDefault("GYM_ADDR", ":8080"),
		ShutdownGracePeriod: getEnvDurationOrDefault("GYM_SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseFile:   getEnvOrDefault("GYM_DB_PATH", "gymdesk.db"),
		AutoMigrate:    getEnvBoolOrDefault("GYM_AUTO_MIGRATE", true),
		BaseURL:        getEnvOrDefault("GYM_BASE_URL", "http://localhost:3000"),
		Issuer:         getEnvOrDefault("GYM_ISSUER", "gymdesk"),
		Audience:       splitList(getEnvOrDefault("GYM_AUDIENCE", "gymdesk")),
		SigningKeyPath: os.Getenv("GYM_SIGNING_KEY_PATH"),
		BootstrapToken: os.Getenv("GYM_BOOTSTRAP_TOKEN"),

		SessionTTL:    getEnvDurationOrDefault("GYM_SESSION_TTL", 240*time.Hour),
		LoginTokenTTL: getEnvDurationOrDefault("GYM_LOGIN_TOKEN_TTL", time.Hour),

		HousekeepingInterval: getEnvDurationOrDefault("GYM_HOUSEKEEPING_INTERVAL", 10*time.Minute),
		Timezone:             getEnvOrDefault("GYM_TIMEZONE", "UTC"),

		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
