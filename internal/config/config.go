package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Dan9191/fintrack/internal/projection"
)

// Config holds application configuration
type Config struct {
	Port      string
	Storage   string // postgres or memory
	DBConn    string
	LogLevel  string
	JWTSecret string
	JWTTTL    time.Duration
	CBRURL    string
	RedisAddr string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	SchedulerSpec string
	ReminderDays  int

	RateLimitPerMinute int // 0 disables rate limiting

	DefaultAssumptions projection.Assumptions
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	defaults := projection.DefaultAssumptions()
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Storage:       getEnv("STORAGE", "postgres"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=fintrack password=fintrack dbname=fintrack sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		CBRURL:        getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "noreply@fintrack.local"),
		SchedulerSpec: getEnv("SCHEDULER_SPEC", "0 8 * * *"),
	}

	var err error
	if cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if cfg.ReminderDays, err = strconv.Atoi(getEnv("REMINDER_DAYS", "3")); err != nil {
		return nil, fmt.Errorf("invalid REMINDER_DAYS: %w", err)
	}
	if cfg.RateLimitPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if cfg.DefaultAssumptions.ExpectedReturn, err = getEnvFloat("DEFAULT_EXPECTED_RETURN", defaults.ExpectedReturn); err != nil {
		return nil, err
	}
	if cfg.DefaultAssumptions.Inflation, err = getEnvFloat("DEFAULT_INFLATION", defaults.Inflation); err != nil {
		return nil, err
	}
	if cfg.DefaultAssumptions.ExpenseGrowth, err = getEnvFloat("DEFAULT_EXPENSE_GROWTH", defaults.ExpenseGrowth); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case "postgres":
		if cfg.DBConn == "" {
			return nil, fmt.Errorf("DB_CONN is required")
		}
	case "memory":
	default:
		return nil, fmt.Errorf("invalid STORAGE %q: want postgres or memory", cfg.Storage)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.SchedulerSpec == "" {
		return nil, fmt.Errorf("SCHEDULER_SPEC is required")
	}

	return cfg, nil
}

// EmailEnabled reports whether SMTP settings are present
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
