package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every setting read at startup
type Config struct {
	Port       string
	GinMode    string
	DBPath     string
	JWTSecret  []byte
	TokenTTL   time.Duration
	BcryptCost int
	LogLevel   string
}

// Load reads an optional .env file, then the environment, falling back to defaults
func Load() *Config {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", ""),
		DBPath:     getEnv("DB_PATH", "food4u.db"),
		JWTSecret:  []byte(getEnv("JWT_SECRET", "food4u_super_secret_2024")),
		TokenTTL:   getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost: getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
