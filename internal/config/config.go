package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port            int
	MaxAmount       float64
	MaxRate         float64
	MaxYears        int
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxAmount:       getEnvFloat("MAX_AMOUNT", 1e10),
		MaxRate:         getEnvFloat("MAX_RATE", 200),
		MaxYears:        getEnvInt("MAX_YEARS", 50),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "rent-vs-buy"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:       getEnvString("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет, что лимиты и порт заданы корректно
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.MaxAmount <= 0 {
		return fmt.Errorf("MAX_AMOUNT must be positive, got %v", c.MaxAmount)
	}
	if c.MaxRate <= 0 {
		return fmt.Errorf("MAX_RATE must be positive, got %v", c.MaxRate)
	}
	if c.MaxYears <= 0 {
		return fmt.Errorf("MAX_YEARS must be positive, got %d", c.MaxYears)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// Addr возвращает адрес, на котором слушает HTTP сервер
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
