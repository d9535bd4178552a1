package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	// APIKey is the shared secret callers send in x-api-key.
	APIKey string

	SupabaseURL    string
	ServiceRoleKey string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string
}

// Load reads the process configuration once at startup. A .env file in the
// working directory is loaded first; variables already set in the
// environment win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{

		AppPort:  getEnv("APP_PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIKey: os.Getenv("EDGE_FUNCTION_KEY"),

		SupabaseURL:    os.Getenv("SUPABASE_URL"),
		ServiceRoleKey: os.Getenv("SERVICE_ROLE_KEY"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	return cfg

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
