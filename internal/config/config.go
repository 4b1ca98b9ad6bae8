package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string
	DBDSN          string
	Environment    string
	MigrationsPath string

	// Рабочие часы салона и шаг сетки календаря
	OpenHour        int
	CloseHour       int
	SlotStepMinutes int
}

func LoadConfig() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:           os.Getenv("DB_DSN"),
		Environment:     os.Getenv("ENV"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		OpenHour:        envInt("OPEN_HOUR", 9),
		CloseHour:       envInt("CLOSE_HOUR", 21),
		SlotStepMinutes: envInt("SLOT_STEP_MINUTES", 60),
	}

	// Дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	// Рабочие часы должны образовывать непустое окно
	if cfg.OpenHour < 0 || cfg.CloseHour > 24 || cfg.OpenHour >= cfg.CloseHour {
		return nil, fmt.Errorf("invalid business hours: OPEN_HOUR=%d CLOSE_HOUR=%d", cfg.OpenHour, cfg.CloseHour)
	}
	if cfg.SlotStepMinutes <= 0 || cfg.SlotStepMinutes > 60 {
		return nil, fmt.Errorf("invalid SLOT_STEP_MINUTES: %d", cfg.SlotStepMinutes)
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// envInt читает целое из переменной окружения с дефолтом
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}
