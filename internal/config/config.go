package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	AppPort         string
	AppEnv          string
	JWTSecret       string
	TokenTTLMinutes int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTLMinutes: envInt("TOKEN_TTL_MINUTES", 60),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
