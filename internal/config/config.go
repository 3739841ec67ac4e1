package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables, load một lần
// lúc startup và inject qua container (không fetch ad-hoc).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
	Booking  BookingConfig
	MinIO    MinIOConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	BaseURL     string // absolute links trong email (unsubscribe, uploads)
}

// DatabaseConfig giữ connection string; URL rỗng nghĩa là chạy với
// JSON-file backend (local development fallback).
type DatabaseConfig struct {
	URL string
}

// Enabled báo backend selection: true → PostgreSQL, false → JSON files.
func (d DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.URL) != ""
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Host) != ""
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type AdminConfig struct {
	Username     string
	Password     string // plain compare fallback (development)
	PasswordHash string // bcrypt hash, ưu tiên nếu set
	Emails       []string
}

// SMTPConfig đọc từ environment; field rỗng sẽ fallback sang
// settings record đã persist (xem settings domain).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type BookingConfig struct {
	// PhoneRegex parameterize phone format theo locale thay vì hardcode.
	// Default vẫn là Vietnamese-mobile pattern của hệ thống gốc.
	PhoneRegex string
	// Delay giữa 2 lần gửi newsletter liên tiếp (SMTP rate limit)
	NewsletterSendDelay time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled báo upload destination: true → object storage, false → local disk.
func (m MinIOConfig) Enabled() bool {
	return strings.TrimSpace(m.AccessKey) != ""
}

type StorageConfig struct {
	DataDir   string // JSON-file backend directory
	UploadDir string // local upload fallback
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Treow Physio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			BaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "change-me-in-production"),
			TTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Emails:       splitList(getEnv("ADMIN_EMAILS", "")),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		Booking: BookingConfig{
			PhoneRegex:          getEnv("BOOKING_PHONE_REGEX", `^(0|\+84)[0-9]{9,10}$`),
			NewsletterSendDelay: getEnvDuration("NEWSLETTER_SEND_DELAY", 500*time.Millisecond),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "physio"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Storage: StorageConfig{
			DataDir:   getEnv("DATA_DIR", "data"),
			UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Production environment phải có session secret và admin credentials thật
	if c.App.Environment == "production" {
		if c.Session.Secret == "change-me-in-production" {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
		if c.Admin.PasswordHash == "" && c.Admin.Password == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
		if c.SMTP.Host == "" {
			fmt.Println("WARNING: SMTP_HOST not set - notification emails depend on persisted SMTP settings")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
