package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds every setting read from the environment (or .env via godotenv)
type Config struct {
	AppName     string
	Port        string
	CORSOrigins string

	// Database
	DBDriver    string // sqlite | postgres
	DBPath      string // sqlite file
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBLogLevel  string // silent | error | warn | info

	// Restaurant floor
	TableCount int

	// Staff auth
	AuthRequired  bool
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	return Config{
		AppName:     getEnv("APP_NAME", "Restaurant Orders v1.0"),
		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:      getEnv("DB_PATH", "orders.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBLogLevel:  strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),

		TableCount: getEnvInt("TABLE_COUNT", 10),

		AuthRequired:  getEnvBool("AUTH_REQUIRED", false),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
