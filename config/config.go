// config.go - Handles configuration for the project

package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values, filled from the environment.
type Config struct {
	Port        string `envconfig:"PORT" default:"5000"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"crm.db"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"secret"`

	// Admin seeding. The admin user is only created when CREATE_ADMIN is
	// set and a password is supplied; there are no hardcoded credentials.
	CreateAdmin   bool   `envconfig:"CREATE_ADMIN" default:"false"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@crm.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine, env vars may be set directly

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
