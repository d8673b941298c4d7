package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/health_risk_api/internal/config"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/observability"
	"github.com/shenikar/health_risk_api/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertSource отдает текущий список городов с риском выше порога
type AlertSource interface {
	Alerts(ctx context.Context) ([]models.CityRisk, error)
}

// AlertWatcher периодически проверяет риски и публикует события оповещений
// в очередь вебхуков
type AlertWatcher struct {
	source    AlertSource
	publisher webhook.WebhookPublisher
	clock     clockwork.Clock
	interval  time.Duration
	threshold float64
	logger    *logrus.Logger
	metrics   *observability.Metrics
}

// NewAlertWatcher создает новый AlertWatcher
func NewAlertWatcher(
	source AlertSource,
	publisher webhook.WebhookPublisher,
	clock clockwork.Clock,
	cfg *config.Config,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) *AlertWatcher {
	return &AlertWatcher{
		source:    source,
		publisher: publisher,
		clock:     clock,
		interval:  cfg.AlertCheckInterval,
		threshold: cfg.RiskAlertThreshold,
		logger:    logger,
		metrics:   metrics,
	}
}

// Start запускает горутину периодической проверки рисков
func (w *AlertWatcher) Start(ctx context.Context) {
	w.logger.WithField("interval", w.interval.String()).Info("Starting alert watcher...")
	go func() {
		ticker := w.clock.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert watcher.")
				return
			case <-ticker.Chan():
				w.runCheck(ctx)
			}
		}
	}()
}

// runCheck выполняет один цикл проверки. Пустой список оповещений
// не публикуется.
func (w *AlertWatcher) runCheck(ctx context.Context) {
	alerts, err := w.source.Alerts(ctx)
	if err != nil {
		w.logger.WithError(err).Error("Failed to compute alerts in watcher")
		return
	}

	if len(alerts) == 0 {
		w.logger.Debug("No cities above alert threshold")
		return
	}

	event := webhook.AlertEvent{
		EventID:   uuid.New(),
		Timestamp: w.clock.Now(),
		Threshold: w.threshold,
		Alerts:    alerts,
		Count:     len(alerts),
	}

	if err := w.publisher.Publish(ctx, event); err != nil {
		w.logger.WithError(err).Error("Failed to publish alert event")
		return
	}

	w.metrics.AlertEvents.Inc()
	w.logger.WithFields(logrus.Fields{
		"event_id":    event.EventID,
		"alert_count": event.Count,
	}).Info("Alert event published")
}
