package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/cloud-ru/rent-vs-buy-go/internal/metrics"
	"github.com/cloud-ru/rent-vs-buy-go/internal/tools"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server HTTP сервер сравнения аренды и покупки
type Server struct {
	cfg   *config.Config
	echo  *echo.Echo
	tools *tools.Registry
	log   *logrus.Logger
}

// New создает сервер и регистрирует маршруты
func New(cfg *config.Config, registry *tools.Registry, log *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{cfg: cfg, echo: e, tools: registry, log: log}

	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		middleware.Recover(),
		s.requestLogger(),
		requestMetrics,
	)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/compare", s.Compare)
	e.POST("/schedule", s.Schedule)

	return s
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start запускает сервер и блокируется до его остановки
func (s *Server) Start() error {
	s.log.WithField("addr", s.cfg.Addr()).Info("listening")
	if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown дожидается завершения активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := s.log.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}

func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method
		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
