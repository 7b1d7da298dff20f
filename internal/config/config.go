package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIPort int    `yaml:"apiPort"`
	Env     string `yaml:"env"`

	Database struct {
		Type     string `yaml:"type"`
		Path     string `yaml:"path"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret       string        `yaml:"jwtSecret"`
		AccessTokenTTL  time.Duration `yaml:"accessTokenTTL"`
		RefreshTokenTTL time.Duration `yaml:"refreshTokenTTL"`
	} `yaml:"auth"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// ErrMissingJWTSecret is returned when no signing secret is configured outside
// the dev environment. There is deliberately no production default.
var ErrMissingJWTSecret = errors.New("auth.jwtSecret must be configured outside dev")

// LoadConfig loads the configuration from file and environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("FIAP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Printf("Warning: could not read config file: %s. Using defaults or environment variables.", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.APIPort == 0 {
		cfg.APIPort = 3001
		log.Println("apiPort not specified, using default 3001")
	}
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./database.db"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.Env != "dev" {
			return nil, ErrMissingJWTSecret
		}
		cfg.Auth.JWTSecret = "dev-only-secret"
		log.Println("Warning: auth.jwtSecret not set, using dev-only signing secret")
	}

	return &cfg, nil
}

// Production reports whether the server runs with production hardening
// (secure cookies, strict secrets).
func (c *Config) Production() bool {
	return c.Env == "prod"
}
