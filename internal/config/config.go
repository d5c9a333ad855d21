package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Taniish2545/ConnectFour/internal/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	BotDifficulty string        `env:"CONNECTFOUR_BOT_DIFFICULTY" validate:"oneof=easy medium hard"`
	BotDelay      time.Duration `env:"CONNECTFOUR_BOT_DELAY" validate:"gte=0"`
	Seed          int           `env:"CONNECTFOUR_SEED" validate:"gte=0"`
	LogLevel      string        `env:"CONNECTFOUR_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile       string        `env:"CONNECTFOUR_LOG_FILE"`
	OTLPEndpoint  string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,hostname_port"`
	ServiceName   string        `env:"OTEL_SERVICE_NAME" validate:"required"`
}

// Load reads an optional .env file, then the environment, and validates the
// result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		BotDifficulty: GetEnv("CONNECTFOUR_BOT_DIFFICULTY", "hard"),
		BotDelay:      GetEnvAsDuration("CONNECTFOUR_BOT_DELAY", 500*time.Millisecond),
		Seed:          GetEnvAsInt("CONNECTFOUR_SEED", 0),
		LogLevel:      GetEnv("CONNECTFOUR_LOG_LEVEL", "info"),
		LogFile:       GetEnv("CONNECTFOUR_LOG_FILE", ""),
		OTLPEndpoint:  GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:   GetEnv("OTEL_SERVICE_NAME", "connectfour"),
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SlogLevel converts LogLevel for the logger.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// RandomSeed returns the configured seed, or a time based one when unset.
func (c *Config) RandomSeed() uint64 {
	if c.Seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(c.Seed)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("Invalid integer value, using default", "env.key", key, "env.value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go duration strings such as "250ms" or "1s".
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("Invalid duration value, using default", "env.key", key, "env.value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}
