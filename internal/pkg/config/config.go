// Package config предоставляет управление конфигурацией приложения
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// BotConfig содержит конфигурацию Telegram-бота.
type BotConfig struct {
	Token                 string `yaml:"token"`
	MaxFiles              int    `yaml:"max_files"`
	InlineLimit           int    `yaml:"inline_limit"`
	MaxFileSize           int64  `yaml:"max_file_size"`
	PollingTimeoutSeconds int    `yaml:"polling_timeout_seconds"`
	HTTPTimeoutSeconds    int    `yaml:"http_timeout_seconds"`
}

// Health содержит конфигурацию HTTP-эндпоинта проверки работоспособности.
type Health struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Logging содержит конфигурацию логирования.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// Config содержит конфигурацию приложения.
type Config struct {
	Bot     BotConfig `yaml:"bot"`
	Health  Health    `yaml:"health"`
	Logging Logging   `yaml:"logging"`
}

// LoadConfig загружает конфигурацию из YAML-файла и переменных окружения.
// Токен бота можно задать через BOT_TOKEN, в том числе из .env файла;
// переменная окружения имеет приоритет над YAML.
func LoadConfig(filename string) (*Config, error) {
	// .env файл необязателен: если его нет, полагаемся на окружение и YAML.
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("не удалось разобрать YAML конфигурацию %s: %w", filename, err)
		}
	case os.IsNotExist(err):
		// Отсутствие файла допустимо.
	default:
		return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	if token := strings.TrimSpace(os.Getenv("BOT_TOKEN")); token != "" {
		cfg.Bot.Token = token
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults подставляет значения по умолчанию вместо незаполненных полей.
func applyDefaults(cfg *Config) {
	if cfg.Bot.MaxFiles == 0 {
		cfg.Bot.MaxFiles = DefaultMaxFiles
	}
	if cfg.Bot.InlineLimit == 0 {
		cfg.Bot.InlineLimit = DefaultInlineLimit
	}
	if cfg.Bot.MaxFileSize == 0 {
		cfg.Bot.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Bot.PollingTimeoutSeconds == 0 {
		cfg.Bot.PollingTimeoutSeconds = DefaultPollingTimeoutSeconds
	}
	if cfg.Bot.HTTPTimeoutSeconds == 0 {
		cfg.Bot.HTTPTimeoutSeconds = DefaultHTTPTimeoutSeconds
	}
	if cfg.Health.Port == 0 {
		cfg.Health.Port = DefaultHealthPort
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// Validate проверяет корректность конфигурации.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot.token is not configured (set BOT_TOKEN or bot.token)")
	}
	if c.Bot.MaxFiles <= 0 {
		return fmt.Errorf("bot.max_files must be positive")
	}
	if c.Bot.InlineLimit <= 0 {
		return fmt.Errorf("bot.inline_limit must be positive")
	}
	if c.Bot.MaxFileSize <= 0 {
		return fmt.Errorf("bot.max_file_size must be positive")
	}
	if c.Bot.PollingTimeoutSeconds <= 0 {
		return fmt.Errorf("bot.polling_timeout_seconds must be positive")
	}
	if c.Bot.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("bot.http_timeout_seconds must be positive")
	}
	if c.Health.Enabled && c.Health.Port <= 0 {
		return fmt.Errorf("health.port must be positive")
	}
	return nil
}
