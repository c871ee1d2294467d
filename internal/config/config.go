package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	CORS  CORSConfig
	Kafka KafkaConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port         int
	Env          string
	LogLevel     string
	Today        string // optional fixed date, YYYY-MM-DD
	SeedFixtures bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// KafkaConfig holds the optional change relay configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether change events should be relayed to Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func Load() (*Config, error) {
	// .env is optional; the environment alone is enough
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_FIXTURES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_FIXTURES: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Today:        getEnv("APP_TODAY", ""),
		SeedFixtures: seed,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.Kafka = KafkaConfig{
		Brokers: getEnvSlice("KAFKA_BROKERS", ""),
		Topic:   getEnv("KAFKA_TOPIC", "team-tracker.changes"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.App.Today != "" {
		if _, err := time.Parse(clock.DateLayout, c.App.Today); err != nil {
			return fmt.Errorf("APP_TODAY must be in YYYY-MM-DD format")
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS is required")
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", c.App.LogLevel)
	}
	return level, nil
}

// Clock returns the system clock, or a clock frozen at APP_TODAY when set.
// The frozen clock keeps the current time of day so timestamps still advance
// in order within a run.
func (c *Config) Clock() clock.Clock {
	if c.App.Today == "" {
		return clock.System()
	}
	day, err := time.ParseInLocation(clock.DateLayout, c.App.Today, time.Local)
	if err != nil {
		return clock.System()
	}
	return func() time.Time {
		now := time.Now()
		return time.Date(day.Year(), day.Month(), day.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.Local)
	}
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
