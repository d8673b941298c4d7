package observability

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics хранит счетчики Prometheus для API и фоновых воркеров
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: method, path, status
	RiskScores   prometheus.Counter
	ChatQueries  *prometheus.CounterVec // labels: intent={city_risk,city_trend,high_risk,help}

	// Метрики оповещений
	AlertEvents      prometheus.Counter
	WebhookDelivered prometheus.Counter
	WebhookFailed    prometheus.Counter
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_risk",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "path", "status"}),
		RiskScores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "health_risk",
			Name:      "risk_scores_total",
			Help:      "Total risk score computations.",
		}),
		ChatQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_risk",
			Name:      "chat_queries_total",
			Help:      "Chat queries by resolved intent.",
		}, []string{"intent"}),
		AlertEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "health_risk",
			Name:      "alert_events_total",
			Help:      "Alert events published to the webhook queue.",
		}),
		WebhookDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "health_risk",
			Name:      "webhook_delivered_total",
			Help:      "Webhook deliveries that got a 2xx response.",
		}),
		WebhookFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "health_risk",
			Name:      "webhook_failed_total",
			Help:      "Webhook deliveries that exhausted all retries.",
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.RiskScores,
		m.ChatQueries,
		m.AlertEvents,
		m.WebhookDelivered,
		m.WebhookFailed,
	)

	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы параллельные
// тесты не падали с "already registered"
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "health_risk", Name: "http_requests_total"}, []string{"method", "path", "status"}),
		RiskScores:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "health_risk", Name: "risk_scores_total"}),
		ChatQueries:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "health_risk", Name: "chat_queries_total"}, []string{"intent"}),
		AlertEvents:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "health_risk", Name: "alert_events_total"}),
		WebhookDelivered: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "health_risk", Name: "webhook_delivered_total"}),
		WebhookFailed:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "health_risk", Name: "webhook_failed_total"}),
	}
}

// GinMiddleware считает HTTP-запросы по методу, маршруту и статусу ответа
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
