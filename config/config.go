package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTIssuer string

	AccessTokenTTL time.Duration
	SessionTTL     time.Duration

	DefaultLocale string

	ResendAPIKey string
	EmailFrom    string
	LeadInbox    string

	MercadoPagoAccessToken string
}

// Load reads the environment once at process start. A missing .env file is
// fine in production where real env vars are set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: envOr("JWT_ISSUER", "publimicro"),

		AccessTokenTTL: durationOr("ACCESS_TOKEN_TTL", 15*time.Minute),
		SessionTTL:     durationOr("SESSION_TTL", 30*24*time.Hour),

		DefaultLocale: envOr("DEFAULT_LOCALE", "pt"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),
		LeadInbox:    os.Getenv("LEAD_INBOX"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
