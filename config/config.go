package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 30
	DefaultRefreshTokenExpiryMin = 10080
	DefaultLogLevel              = "info"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	LogLevel           string
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then
// resolves each setting. The file is read without touching the process
// environment, so real environment variables always win and repeated calls
// never see each other's file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := ".env.dev"
	if env == "production" {
		envFile = ".env.prod"
	}

	fileVals, err := godotenv.Read(filepath.Join("config", envFile))
	if err != nil {
		// Missing file is fine: everything can come from the environment.
		fileVals = map[string]string{}
	}

	return &Config{
		Env:                env,
		Port:               resolve(fileVals, "PORT", DefaultPort),
		DBURL:              mustResolve(fileVals, "DB_URL"),
		AccessTokenSecret:  mustResolve(fileVals, "ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustResolve(fileVals, "REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    resolveInt(fileVals, "ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   resolveInt(fileVals, "REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		LogLevel:           resolve(fileVals, "LOG_LEVEL", DefaultLogLevel),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// resolve prefers the environment, then the file, then the default.
func resolve(file map[string]string, key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := file[key]; value != "" {
		return value
	}
	return defaultVal
}

func mustResolve(file map[string]string, key string) string {
	if value := resolve(file, key, ""); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func resolveInt(file map[string]string, key string, defaultVal int) int {
	valStr := resolve(file, key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
