package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	History  HistoryConfig  `mapstructure:"history"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	BotToken       string        `mapstructure:"bot_token"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// HistoryConfig holds calculation-history persistence configuration
type HistoryConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	MaxEntries    int    `mapstructure:"max_entries"`
	FilePath      string `mapstructure:"file_path"`
	SweepSchedule string `mapstructure:"sweep_schedule"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set config file
	v.SetConfigFile(path)

	// Set defaults
	setDefaults(v)

	// Enable environment variable override (CHANNELCAST_TELEGRAM_BOT_TOKEN etc.)
	v.SetEnvPrefix("CHANNELCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")

	// History defaults
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 500)
	v.SetDefault("history.file_path", "./data/channelcast-history.json")
	v.SetDefault("history.sweep_schedule", "0 3 * * *")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Server config
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if c.Server.ReadTimeout < 1*time.Second {
		return fmt.Errorf("server.read_timeout must be at least 1 second")
	}
	if c.Server.WriteTimeout < 1*time.Second {
		return fmt.Errorf("server.write_timeout must be at least 1 second")
	}
	if c.Server.ShutdownTimeout < 1*time.Second {
		return fmt.Errorf("server.shutdown_timeout must be at least 1 second")
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.MaxRetries < 1 {
			return fmt.Errorf("telegram.max_retries must be at least 1")
		}
		if c.Telegram.RetryDelayBase < 100*time.Millisecond {
			return fmt.Errorf("telegram.retry_delay_base must be at least 100ms")
		}
	}

	// Validate History config
	if c.History.Enabled {
		if c.History.MaxEntries < 1 {
			return fmt.Errorf("history.max_entries must be at least 1")
		}
		if c.History.FilePath == "" {
			return fmt.Errorf("history.file_path is required when history is enabled")
		}
		if _, err := cron.ParseStandard(c.History.SweepSchedule); err != nil {
			return fmt.Errorf("history.sweep_schedule is not a valid cron expression: %w", err)
		}
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
