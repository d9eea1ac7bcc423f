package config

import (
	"fmt"
	"os"
)

// Config holds all environment-derived settings. It is constructed once in
// main and handed to whoever needs it, so nothing reads os.Getenv at request
// time.
type Config struct {
	Port string
	Env  string

	DBPath string

	JWTSecret     string
	WebhookSecret string
	AdminSecret   string

	MailAPIURL string
	MailAPIKey string
	AdminEmail string

	PublicBaseURL string
	UploadDir     string
}

// Load reads the configuration from the process environment. Secrets have no
// fallback: a missing one is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DBPath:        getEnv("DB_PATH", "qr_menu.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		AdminSecret:   os.Getenv("ADMIN_SECRET"),
		MailAPIURL:    os.Getenv("MAIL_API_URL"),
		MailAPIKey:    os.Getenv("MAIL_API_KEY"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
	}

	for name, v := range map[string]string{
		"JWT_SECRET":     cfg.JWTSecret,
		"WEBHOOK_SECRET": cfg.WebhookSecret,
		"ADMIN_SECRET":   cfg.AdminSecret,
	} {
		if v == "" {
			return nil, fmt.Errorf("%s environment variable is not set", name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
