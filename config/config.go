// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port    string
	GinMode string

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins string

	// Requests per minute (and burst) allowed per client IP on the
	// register/login routes.
	AuthRateLimit int
	AuthRateBurst int

	StorageType      string
	StorageLocalPath string
	S3Bucket         string
	S3Region         string
	AWSAccessKey     string
	AWSSecretKey     string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnvString("PORT", "8000"),
		GinMode: getEnvString("GIN_MODE", "debug"),

		JWTSecret: getEnvString("JWT_SECRET", "awesome-referrals-dev-secret"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", time.Hour),

		AllowedOrigins: getEnvString("ALLOWED_ORIGINS", "*"),

		AuthRateLimit: getEnvInt("AUTH_RATE_LIMIT", 30),
		AuthRateBurst: getEnvInt("AUTH_RATE_BURST", 10),

		StorageType:      getEnvString("STORAGE_TYPE", "local"),
		StorageLocalPath: getEnvString("STORAGE_LOCAL_PATH", "./storage/resumes"),
		S3Bucket:         getEnvString("AWS_S3_BUCKET", ""),
		S3Region:         getEnvString("AWS_REGION", "us-east-1"),
		AWSAccessKey:     getEnvString("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     getEnvString("AWS_SECRET_ACCESS_KEY", ""),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
