package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment. It is built once in main
// and passed down; nothing else reads os.Getenv for these values.
type Config struct {
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	Port        string
	FrontendURL string
}

// Load reads .env (if present) and the process environment. It fails fast on
// the variables the server cannot run without.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is missing")
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		log.Fatal("database environment missing, check DB_USER and DB_NAME")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
