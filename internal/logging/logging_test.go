package logging

import (
	"testing"

	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "json debug", cfg: config.Config{LogLevel: "DEBUG", LogFormat: "json"}, wantLevel: logrus.DebugLevel, wantJSON: true},
		{name: "text warn", cfg: config.Config{LogLevel: "warn", LogFormat: "text"}, wantLevel: logrus.WarnLevel, wantJSON: false},
		{name: "unknown level", cfg: config.Config{LogLevel: "loud", LogFormat: "json"}, wantLevel: logrus.InfoLevel, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(&tt.cfg)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.wantJSON {
				t.Errorf("json formatter = %v, want %v", isJSON, tt.wantJSON)
			}
		})
	}
}
