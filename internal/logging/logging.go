package logging

import (
	"os"

	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/sirupsen/logrus"
)

// NewLogger создает логгер с уровнем и форматом из конфигурации.
// Неизвестный уровень заменяется на INFO.
func NewLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	return logger
}
