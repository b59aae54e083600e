package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at start-up.
type Config struct {
	Env            string
	HTTPPort       string
	LogLevel       string
	AllowedOrigins []string

	SeedFile          string
	MongoURI          string
	MongoDatabase     string
	MongoCollection   string
	RedisAddress      string
	RedisPassword     string
	ReportLimitPrefix string
	ReportLimit       int
	ReportLimitWindow time.Duration
	ReportDelay       time.Duration
}

// Load reads configuration from the environment, loading .env first when it
// exists. It reports whether a .env file was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SeedFile:          getEnv("SEED_FILE", ""),
		MongoURI:          getEnv("MONGODB_URI", ""),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "upaya"),
		MongoCollection:   getEnv("MONGODB_COLLECTION", "issues"),
		RedisAddress:      getEnv("REDIS_ADDRESS", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ReportLimitPrefix: getEnv("REDIS_QUEUE_FOR_REPORT_LIMIT", "upaya:report-limit"),
	}

	var err error
	if cfg.ReportLimit, err = parseInt("REPORT_LIMIT", "10"); err != nil {
		return nil, dotenv, err
	}
	if cfg.ReportLimitWindow, err = parseDuration("REPORT_LIMIT_WINDOW", "24h"); err != nil {
		return nil, dotenv, err
	}
	if cfg.ReportDelay, err = parseDuration("REPORT_DELAY", "1500ms"); err != nil {
		return nil, dotenv, err
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "")
	if origins == "" {
		if cfg.Env == "production" {
			return nil, dotenv, fmt.Errorf("config: CORS_ALLOWED_ORIGINS is required in production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg, dotenv, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseInt(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: invalid number %q: %w", key, raw, err)
	}
	return n, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
