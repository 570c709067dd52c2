package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, devJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.False(t, cfg.IsStorageConfigured())
	assert.False(t, cfg.Storage.PublicRead)
	assert.EqualValues(t, 10<<20, cfg.Storage.MaxUploadBytes)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_ACCESS_TTL", "10m")
	t.Setenv("S3_BUCKET", "pets-bucket")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_USE_ACCELERATE", "true")
	t.Setenv("S3_PUBLIC_READ", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.True(t, cfg.IsStorageConfigured())
	assert.True(t, cfg.Storage.UseAccelerate)
	assert.True(t, cfg.Storage.PublicRead)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate_RejectsNonPositiveUploadLimit(t *testing.T) {
	cfg := &Config{
		JWT:     JWTConfig{Secret: "x", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
		Storage: StorageConfig{MaxUploadBytes: 0},
	}
	assert.Error(t, cfg.Validate())
}
