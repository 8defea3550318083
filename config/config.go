package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/models"
)

// Config carries everything the process needs at startup. It is built once in
// main and passed down; nothing reads the environment after Load returns.
type Config struct {
	Env           string `env:"ENV" envDefault:"development"`
	Port          string `env:"PORT" envDefault:"8000"`
	DatabaseURL   string `env:"DATABASE_URL" envDefault:"postgresql://postgres@localhost/growing_up"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	S3Region      string `env:"S3_REGION"`
	S3Bucket      string `env:"S3_BUCKET"`
	CloudFrontURL string `env:"CLOUDFRONT_URL"`
}

func Load() (*Config, error) {
	// .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// OpenDB connects to Postgres and migrates the schema.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Child{},
		&models.Meal{},
		&models.Sleep{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
