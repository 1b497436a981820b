// Package config содержит логику чтения конфигурации утилиты проверки номеров карт.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultLogLevel = "info"
	defaultFormat   = "text"
)

// Config содержит параметры конфигурации утилиты.
type Config struct {
	LogLevel string   `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format   string   `env:"OUTPUT_FORMAT" validate:"oneof=text json"`
	Numbers  []string `env:"CARD_NUMBERS" envSeparator:","`
}

// Parse считывает конфигурацию из файла .env, переменных окружения и флагов командной строки.
// Переменные окружения имеют приоритет над флагами. Номера карт, переданные
// позиционными аргументами, используются только если не задан CARD_NUMBERS.
func Parse() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envLogLevel := cfg.LogLevel
	envFormat := cfg.Format
	envNumbers := cfg.Numbers

	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.Format, "f", defaultFormat, "report format (text, json)")

	flag.Parse()

	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}
	if envFormat != "" {
		cfg.Format = envFormat
	}
	if len(envNumbers) > 0 {
		cfg.Numbers = envNumbers
	} else if args := flag.Args(); len(args) > 0 {
		cfg.Numbers = args
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
