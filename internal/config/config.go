package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	APIPort         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	MongoURI            string
	MongoDatabase       string
	MongoCollection     string
	MongoConnectTimeout time.Duration

	DefaultPassword   string
	PasswordMinLength int
	BcryptCost        int
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		APIPort:         getEnv("API_PORT", "8080"),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 15)) * time.Second,

		MongoURI:            getEnv("MONGO_URI", ""),
		MongoDatabase:       getEnv("MONGO_DATABASE", "clinic"),
		MongoCollection:     getEnv("MONGO_COLLECTION", "users"),
		MongoConnectTimeout: time.Duration(getEnvAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,

		DefaultPassword:   getEnv("DEFAULT_PASSWORD", "123456"),
		PasswordMinLength: getEnvAsInt("PASSWORD_MIN_LENGTH", 6),
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 14),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production logging and
// gin release mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
