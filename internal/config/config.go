package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	// SlackChannelID is where duty notifications are posted. Empty disables them.
	SlackChannelID string

	DatabasePath string
	Port         string `validate:"required,numeric"`

	Timezone         string `validate:"required"`
	CycleStartDate   string `validate:"required,datetime=2006-01-02"`
	NotificationTime string `validate:"required,datetime=15:04"`

	// RedisAddr enables the shared weekly record mirror when set
	RedisAddr      string `validate:"omitempty,hostname_port"`
	RedisPassword  string
	RedisDB        int `validate:"gte=0"`
	RedisKeyPrefix string

	OpenAIAPIKey string
	OpenAIModel  string

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`

	CORSAllowedOrigins []string
}

// Load reads the configuration from the environment and validates it.
// Call godotenv.Load beforehand to pick up a .env file.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./cleaning.db"),
		Port:               getEnv("PORT", "3000"),
		Timezone:           getEnv("TIMEZONE", "America/Sao_Paulo"),
		CycleStartDate:     getEnv("CYCLE_START_DATE", "2025-01-06"),
		NotificationTime:   getEnv("NOTIFICATION_TIME", "09:00"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            redisDB,
		RedisKeyPrefix:     getEnv("REDIS_KEY_PREFIX", "cleaning"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "json")),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured IANA timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
