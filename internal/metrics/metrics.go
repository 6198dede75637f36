package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// Verdicts счетчик итогов сравнения
	Verdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_verdicts_total",
			Help: "Итоги сравнения аренды и покупки",
		},
		[]string{"verdict"},
	)

	// HTTPRequests счетчик HTTP запросов
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration длительность обработки HTTP запросов
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность обработки HTTP запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
