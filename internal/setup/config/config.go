package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/calculations"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port           string
	AllowedOrigins []string

	// Database
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	// Export staging, disabled without a URL
	RedisURL  string
	ExportTTL time.Duration

	// Session token identity, disabled without a secret
	SecretJWT string

	Timezone          string
	TrendMonths       int
	RecalcConcurrency int

	LogLevel  string
	LogFormat string
}

// LoadEnvFile loads variables from path when it exists. Variables already set
// in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "smartspend"),
		MongoTimeout:  getEnvDuration("MONGODB_TIMEOUT", 10*time.Second),

		RedisURL:  getEnv("REDIS_URL", ""),
		ExportTTL: getEnvDuration("EXPORT_TTL", 15*time.Minute),

		SecretJWT: getEnv("SECRET_JWT", ""),

		Timezone:          getEnv("TIMEZONE", "UTC"),
		TrendMonths:       getEnvInt("DASHBOARD_TREND_MONTHS", calculations.DefaultTrendMonths),
		RecalcConcurrency: getEnvInt("RECALC_CONCURRENCY", calculations.DefaultRecalcConcurrency),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate collects every problem into a single error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if parsed, err := url.Parse(c.MongoURI); err != nil || (parsed.Scheme != "mongodb" && parsed.Scheme != "mongodb+srv") {
		problems = append(problems, fmt.Sprintf("invalid MongoDB URI '%s': scheme must be 'mongodb' or 'mongodb+srv'", c.MongoURI))
	}
	if c.MongoDatabase == "" {
		problems = append(problems, "MongoDB database name cannot be empty")
	}
	if c.MongoTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("invalid MongoDB timeout %v: must be at least 1 second", c.MongoTimeout))
	}

	if c.RedisURL != "" {
		if parsed, err := url.Parse(c.RedisURL); err != nil || (parsed.Scheme != "redis" && parsed.Scheme != "rediss") {
			problems = append(problems, fmt.Sprintf("invalid Redis URL '%s': scheme must be 'redis' or 'rediss'", c.RedisURL))
		}
		if c.ExportTTL < time.Minute || c.ExportTTL > 24*time.Hour {
			problems = append(problems, fmt.Sprintf("invalid export TTL %v: must be between 1 minute and 24 hours", c.ExportTTL))
		}
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s'", c.Timezone))
	}

	if c.TrendMonths < 1 || c.TrendMonths > calculations.MaxTrendMonths {
		problems = append(problems, fmt.Sprintf("invalid dashboard trend months %d: must be between 1 and %d", c.TrendMonths, calculations.MaxTrendMonths))
	}
	if c.RecalcConcurrency < 1 || c.RecalcConcurrency > 64 {
		problems = append(problems, fmt.Sprintf("invalid recalc concurrency %d: must be between 1 and 64", c.RecalcConcurrency))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// Location is where period and month boundaries fall. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
