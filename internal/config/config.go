package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/set-night/elliotlab/internal/domain"
	"github.com/shopspring/decimal"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPebble   Backend = "pebble"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`

	// Storage
	StorageBackend Backend `env:"STORAGE_BACKEND" envDefault:"memory"`
	DatabaseURL    string  `env:"DATABASE_URL"`
	PebblePath     string  `env:"PEBBLE_PATH" envDefault:"data/elliot"`

	// Dialogue
	ThinkBase    time.Duration `env:"THINK_BASE" envDefault:"1500ms"`
	ThinkJitter  time.Duration `env:"THINK_JITTER" envDefault:"1000ms"`
	HistoryLimit int           `env:"HISTORY_LIMIT" envDefault:"50"`
	ChatIdleTTL  time.Duration `env:"CHAT_IDLE_TTL" envDefault:"1h"`

	// Engagement points per dialogue message and per comment
	DialogueWeight decimal.Decimal `env:"ENGAGEMENT_DIALOGUE_WEIGHT" envDefault:"2"`
	CommentWeight  decimal.Decimal `env:"ENGAGEMENT_COMMENT_WEIGHT" envDefault:"3"`

	// Rate limit
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int   `env:"LOG_TOPIC_ERROR"`
	LogTopicComment   int   `env:"LOG_TOPIC_COMMENT"`
	LogTopicIdea      int   `env:"LOG_TOPIC_IDEA"`
	LogTopicReset     int   `env:"LOG_TOPIC_RESET"`
	LogTopicFeedback  int   `env:"LOG_TOPIC_FEEDBACK"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendPebble:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return domain.ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownBackend, c.StorageBackend)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.ThinkBase < 0 || c.ThinkJitter < 0 {
		return fmt.Errorf("think durations must not be negative")
	}
	if c.DialogueWeight.IsNegative() || c.CommentWeight.IsNegative() {
		return fmt.Errorf("engagement weights must not be negative")
	}
	if !c.DialogueWeight.Add(c.CommentWeight).IsPositive() {
		return fmt.Errorf("at least one engagement weight must be positive")
	}
	return nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

// SlogLevel maps LOG_LEVEL to a slog level, info when unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
