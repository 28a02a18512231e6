package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Vision   VisionConfig   `json:"vision"`
	Upload   UploadConfig   `json:"upload"`
	Alert    AlertConfig    `json:"alert"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// VisionConfig drives the evidence-based severity scorer. An empty APIKey
// means the scorer is unconfigured and always answers with the fallback.
type VisionConfig struct {
	APIKey       string        `json:"api_key,omitempty"`
	Model        string        `json:"model"`
	FetchTimeout time.Duration `json:"fetch_timeout"`
}

type UploadConfig struct {
	Backend     string `json:"backend"` // "disk" or "s3"
	Dir         string `json:"dir"`
	BaseURL     string `json:"base_url"`
	Bucket      string `json:"bucket"`
	Region      string `json:"region"`
	MaxFileSize int64  `json:"max_file_size"`
}

type AlertConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "roadguard_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Vision: VisionConfig{
			APIKey:       getEnv("VISION_API_KEY", ""),
			Model:        getEnv("VISION_MODEL", "gpt-4o-mini"),
			FetchTimeout: getEnvDuration("VISION_FETCH_TIMEOUT", 5*time.Second),
		},
		Upload: UploadConfig{
			Backend:     getEnv("UPLOAD_BACKEND", "disk"),
			Dir:         getEnv("UPLOAD_DIR", "./uploads"),
			BaseURL:     getEnv("UPLOAD_BASE_URL", "http://localhost:8080/files"),
			Bucket:      getEnv("UPLOAD_S3_BUCKET", ""),
			Region:      getEnv("UPLOAD_S3_REGION", "us-east-1"),
			MaxFileSize: getEnvInt64("UPLOAD_MAX_FILE_SIZE", 10<<20),
		},
		Alert: AlertConfig{
			URL:      getEnv("ALERT_WEBHOOK_URL", ""),
			Disabled: getEnvBool("ALERT_WEBHOOK_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("upload_backend", cfg.Upload.Backend),
		slog.Bool("vision_configured", cfg.Vision.APIKey != ""))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Upload.Backend != "disk" && c.Upload.Backend != "s3" {
		return errors.New("UPLOAD_BACKEND must be 'disk' or 's3'")
	}
	if c.Upload.Backend == "s3" && c.Upload.Bucket == "" {
		return errors.New("UPLOAD_S3_BUCKET required when UPLOAD_BACKEND=s3")
	}
	if c.Upload.MaxFileSize <= 0 {
		return errors.New("UPLOAD_MAX_FILE_SIZE must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
