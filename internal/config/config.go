package config

import "os"

// Config carries everything main needs to wire the service. Values come
// from the environment (godotenv loads .env first in main).
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string // empty disables the notification publisher
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
