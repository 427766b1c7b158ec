package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	Env          string
	DatabasePath string
	JWTSecret    string
	JWTExpiry    time.Duration

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailUseTLS   bool
	MailUseSSL   bool
	MailSender   string
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabasePath: getEnv("DATABASE_PATH", "planet.db"),
		JWTSecret:    getEnv("JWT_SECRET", "super-secret"),
		JWTExpiry:    getEnvDuration("JWT_EXPIRY", 15*time.Minute),

		MailHost:     getEnv("MAIL_SERVER", "localhost"),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUsername: getEnv("MAIL_USERNAME", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
		MailUseTLS:   getEnvBool("MAIL_USE_TLS", true),
		MailUseSSL:   getEnvBool("MAIL_USE_SSL", false),
		MailSender:   getEnv("MAIL_SENDER", "admin@planetary.edu"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "super-secret" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		slog.Warn("invalid boolean in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}
