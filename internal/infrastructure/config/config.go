package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable not set")
	ErrMissingMongoURI  = errors.New("MONGODB_URI environment variable not set")
)

// DefaultAllowedOrigins are the front-end origins allowed to make credentialed requests.
var DefaultAllowedOrigins = []string{
	"http://localhost:8080",
	"http://10.0.0.4:8080",
	"http://localhost:3000",
}

// Config holds application configuration values.
type Config struct {
	Env                 string
	Port                string
	MongoURI            string
	MongoDBName         string
	JWTSecret           string
	TokenTTL            time.Duration
	AllowedOrigins      []string
	RedisURL            string
	VerificationCode    string
	VerificationCodeTTL time.Duration
	RateLimitPerSecond  float64
}

// Load reads configuration from the environment. A missing signing secret or
// database URI is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGODB_DB_NAME", "edunova")
	v.SetDefault("TOKEN_TTL_HOURS", 720) // 30 days
	v.SetDefault("CORS_ALLOWED_ORIGINS", strings.Join(DefaultAllowedOrigins, ","))
	v.SetDefault("VERIFICATION_CODE", "123456")
	v.SetDefault("VERIFICATION_CODE_TTL_MINUTES", 15)
	v.SetDefault("RATE_LIMIT_PER_SECOND", 10)

	cfg := &Config{
		Env:                 v.GetString("APP_ENV"),
		Port:                v.GetString("PORT"),
		MongoURI:            v.GetString("MONGODB_URI"),
		MongoDBName:         v.GetString("MONGODB_DB_NAME"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		TokenTTL:            time.Hour * time.Duration(v.GetInt("TOKEN_TTL_HOURS")),
		AllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RedisURL:            v.GetString("REDIS_URL"),
		VerificationCode:    v.GetString("VERIFICATION_CODE"),
		VerificationCodeTTL: time.Minute * time.Duration(v.GetInt("VERIFICATION_CODE_TTL_MINUTES")),
		RateLimitPerSecond:  v.GetFloat64("RATE_LIMIT_PER_SECOND"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
