package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio.
// Es el único lugar que lee variables de entorno; el resto recibe structs explícitos.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	CORS     CORSConfig
	Log      LogConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name string
	Env  string // development | production
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// DSN vacío => repos in-memory (modo dev).
	DSN          string
	AutoMigrate  bool
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	QueryTimeout time.Duration
}

type JWTConfig struct {
	Secret          string
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// StorageConfig: bucket S3 para fotos. Bucket vacío => object store in-memory.
type StorageConfig struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // opcional (MinIO, localstack)
	PublicBaseURL   string // opcional (CDN)
	UseAccelerate   bool
	UsePathStyle    bool
	PublicRead      bool // ACL public-read en cada foto (buckets con ACLs)
	Timeout         time.Duration
	MaxUploadBytes  int64
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

type LogConfig struct {
	Level  string
	Format string
}

type SeedConfig struct {
	// PartnersFile: path local o URL http(s) con el catálogo YAML/JSON.
	PartnersFile string
	FetchTimeout time.Duration
}

const devJWTSecret = "dev-secret-change-me"

// Load lee .env (opcional) y variables de entorno.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		// Sin .env en cwd probamos el root cuando se corre desde cmd/api.
		_ = godotenv.Load("../../.env")
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "pet-care-service"),
			Env:  strings.ToLower(getEnv("APP_ENV", "development")),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN:          getEnv("DB_DSN", ""),
			AutoMigrate:  getBoolEnv("DB_AUTO_MIGRATE", false),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 30*time.Minute),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 5*time.Second),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", ""),
			Issuer:          getEnv("JWT_ISSUER", "pet-care-service"),
			AccessTokenTTL:  getDurationEnv("JWT_ACCESS_TTL", 5*time.Minute),
			RefreshTokenTTL: getDurationEnv("JWT_REFRESH_TTL", 24*time.Hour),
		},
		Storage: StorageConfig{
			Bucket:          getEnv("S3_BUCKET", ""),
			Region:          getEnv("S3_REGION", getEnv("AWS_REGION", "us-east-1")),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
			UseAccelerate:   getBoolEnv("S3_USE_ACCELERATE", false),
			UsePathStyle:    getBoolEnv("S3_USE_PATH_STYLE", false),
			PublicRead:      getBoolEnv("S3_PUBLIC_READ", false),
			Timeout:         getDurationEnv("STORAGE_TIMEOUT", 15*time.Second),
			MaxUploadBytes:  getInt64Env("UPLOAD_MAX_BYTES", 10<<20),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Seed: SeedConfig{
			PartnersFile: getEnv("SEED_PARTNERS_FILE", ""),
			FetchTimeout: getDurationEnv("SEED_FETCH_TIMEOUT", 10*time.Second),
		},
	}

	if cfg.JWT.Secret == "" && !cfg.IsProduction() {
		cfg.JWT.Secret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate valida combinaciones obligatorias.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWT.Secret == devJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWT.AccessTokenTTL <= 0 || c.JWT.RefreshTokenTTL <= 0 {
		return errors.New("JWT TTLs must be positive")
	}
	if c.Storage.Bucket != "" && strings.TrimSpace(c.Storage.Region) == "" {
		return errors.New("S3_REGION is required when S3_BUCKET is set")
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

func (c *Config) IsStorageConfigured() bool {
	return strings.TrimSpace(c.Storage.Bucket) != ""
}

// Helpers de parseo de env

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := make([]string, 0)
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
