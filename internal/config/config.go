package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds every process-wide setting. It is built once at startup and
// treated as immutable afterwards; components receive it by value or pointer
// instead of reading the environment themselves.
type Config struct {
	Port          string
	JWTSecret     string
	TokenLifetime time.Duration
	SessionSecret string
	DBPath        string
	LogLevel      string
}

const defaultTokenLifetimeSec = 3600

// Startup validation errors. Both are fatal before the server ever listens.
var (
	ErrMissingJWTSecret = errors.New("jwt_secret is required (set JWT_SECRET)")
	ErrMissingDBPath    = errors.New("db.path is required (set DATABASE_URL)")
)

// Load reads configs/config.yml if present and overlays environment variables.
// A missing config file is fine (env-only deployments); missing required
// values are not.
func Load() (*Config, error) {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("port", "8080")
	viper.SetDefault("token_lifetime", defaultTokenLifetimeSec)
	viper.SetDefault("log_level", "info")

	// Environment names kept compatible with the previous deployment.
	_ = viper.BindEnv("port", "PORT")
	_ = viper.BindEnv("jwt_secret", "JWT_SECRET")
	_ = viper.BindEnv("token_lifetime", "TOKEN_LIFETIME")
	_ = viper.BindEnv("session_secret", "SESSION_SECRET")
	_ = viper.BindEnv("db.path", "DATABASE_URL")
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Port:          viper.GetString("port"),
		JWTSecret:     viper.GetString("jwt_secret"),
		TokenLifetime: time.Duration(viper.GetInt("token_lifetime")) * time.Second,
		SessionSecret: viper.GetString("session_secret"),
		DBPath:        viper.GetString("db.path"),
		LogLevel:      viper.GetString("log_level"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.DBPath == "" {
		return nil, ErrMissingDBPath
	}
	if cfg.TokenLifetime <= 0 {
		cfg.TokenLifetime = defaultTokenLifetimeSec * time.Second
	}
	return cfg, nil
}
