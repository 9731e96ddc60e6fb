package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string        // Issuer claim for session tokens
	SessionKeyFile string        // Optional: path to Ed25519 PKCS8 PEM key; ephemeral key when unset
	SessionTTL     time.Duration // Session token lifetime (default: 24h)

	DatabaseFile        string        // Path to SQLite database file (default: ./market.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	InviteTTL     time.Duration // Invite redemption window (default: 7 days)
	InviteBaseURL string        // Frontend origin embedded in invite links

	SendGridAPIKey string // Optional: logging notifier is used when unset
	MailFromEmail  string
	MailFromName   string

	InstagramAppID       string
	InstagramAppSecret   string
	InstagramRedirectURI string
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         getEnvOrDefault("MARKET_ISSUER", "kol-market"),
		SessionKeyFile: os.Getenv("MARKET_SESSION_KEY_FILE"),
		SessionTTL:     getEnvDurationOrDefault("MARKET_SESSION_TTL", 24*time.Hour),

		DatabaseFile:        getEnvOrDefault("MARKET_DATABASE_FILE", "market.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		InviteTTL:     getEnvDurationOrDefault("MARKET_INVITE_TTL", 7*24*time.Hour),
		InviteBaseURL: getEnvOrDefault("MARKET_INVITE_BASE_URL", "http://localhost:3000"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFromEmail:  getEnvOrDefault("MAIL_FROM_EMAIL", "noreply@kolmarket.local"),
		MailFromName:   getEnvOrDefault("MAIL_FROM_NAME", "KOL Market"),

		InstagramAppID:       os.Getenv("INSTAGRAM_APP_ID"),
		InstagramAppSecret:   os.Getenv("INSTAGRAM_APP_SECRET"),
		InstagramRedirectURI: os.Getenv("INSTAGRAM_REDIRECT_URI"),
	}

	return cfg
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
