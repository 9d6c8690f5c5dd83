package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"chartbase"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"chartbase_dev_password"`
	DBName     string `env:"DB_NAME" envDefault:"chartbase"`

	S3Endpoint     string `env:"S3_ENDPOINT" envDefault:"localhost:9000"`
	S3AccessKey    string `env:"S3_ACCESS_KEY" envDefault:"minioadmin"`
	S3SecretKey    string `env:"S3_SECRET_KEY" envDefault:"minioadmin"`
	S3Bucket       string `env:"S3_BUCKET" envDefault:"chartbase-assets"`
	S3UseSSL       bool   `env:"S3_USE_SSL" envDefault:"false"`
	S3AssetBaseURL string `env:"S3_ASSET_BASE_URL" envDefault:"http://localhost:9000/chartbase-assets"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`

	// Admin endpoints compare this header against AdminSecret.
	AdminHeader string `env:"ADMIN_HEADER" envDefault:"X-Admin-Secret"`
	AdminSecret string `env:"ADMIN_SECRET" envDefault:"dev-admin-change-me"`

	// Upload ceilings in bytes, checked before any decode work.
	MaxProfileBytes int64 `env:"MAX_PROFILE_BYTES" envDefault:"5242880"`
	MaxBannerBytes  int64 `env:"MAX_BANNER_BYTES" envDefault:"10485760"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
