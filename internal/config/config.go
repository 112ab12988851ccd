package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	HTTPPort    string
	MetricsPort string
	DBPath      string
	RedisAddr   string
	AdminToken  string
}

// Load reads .env if present, then the process environment. Every key has a
// development default except ADMIN_TOKEN, which gates the admin routes and
// must be set explicitly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("ENV", "development"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9091"),
		DBPath:      getEnv("DB_PATH", "casino.sqlite"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
