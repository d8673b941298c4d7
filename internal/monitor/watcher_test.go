package monitor

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/health_risk_api/internal/config"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/monitor/mocks"
	"github.com/shenikar/health_risk_api/internal/observability"
	"github.com/shenikar/health_risk_api/internal/webhook"
	webhook_mocks "github.com/shenikar/health_risk_api/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWatcher — вспомогательная функция для создания вотчера с моками и
// замороженными часами.
func newTestWatcher(t *testing.T) (*AlertWatcher, *mocks.MockAlertSource, *webhook_mocks.MockWebhookPublisher, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockAlertSource(ctrl)
	publisherMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RiskAlertThreshold: 0.75,
		AlertCheckInterval: time.Minute,
	}
	fakeClock := clockwork.NewFakeClockAt(time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC))

	watcher := NewAlertWatcher(sourceMock, publisherMock, fakeClock, cfg, logger, observability.NewMetricsForTesting())
	return watcher, sourceMock, publisherMock, fakeClock
}

func TestAlertWatcher_PublishesWhenAlertsPresent(t *testing.T) {
	// Подготовка
	watcher, sourceMock, publisherMock, fakeClock := newTestWatcher(t)
	alerts := []models.CityRisk{
		{City: "Delhi", Risk: 0.82},
		{City: "Mumbai", Risk: 0.79},
	}
	published := make(chan webhook.AlertEvent, 1)

	// Ожидания
	sourceMock.EXPECT().Alerts(gomock.Any()).Return(alerts, nil).Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event webhook.AlertEvent) error {
			published <- event
			return nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие
	watcher.Start(ctx)
	require.NoError(t, fakeClock.BlockUntilContext(ctx, 1))
	fakeClock.Advance(time.Minute)

	// Проверки
	select {
	case event := <-published:
		assert.NotEqual(t, uuid.Nil, event.EventID)
		assert.Equal(t, time.Date(2025, time.June, 10, 9, 1, 0, 0, time.UTC), event.Timestamp)
		assert.InDelta(t, 0.75, event.Threshold, 1e-9)
		assert.Equal(t, alerts, event.Alerts)
		assert.Equal(t, 2, event.Count)
	case <-time.After(time.Second):
		t.Fatal("событие оповещения не было опубликовано")
	}
}

func TestAlertWatcher_SkipsEmptyAlerts(t *testing.T) {
	// Подготовка
	watcher, sourceMock, _, fakeClock := newTestWatcher(t)
	checked := make(chan struct{}, 1)

	// Ожидания
	// Publish не ожидается: пустой список оповещений не публикуется
	sourceMock.EXPECT().
		Alerts(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.CityRisk, error) {
			checked <- struct{}{}
			return []models.CityRisk{}, nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие
	watcher.Start(ctx)
	require.NoError(t, fakeClock.BlockUntilContext(ctx, 1))
	fakeClock.Advance(time.Minute)

	// Проверки
	select {
	case <-checked:
	case <-time.After(time.Second):
		t.Fatal("проверка рисков не была запущена")
	}
}

func TestAlertWatcher_KeepsRunningAfterPublishError(t *testing.T) {
	// Подготовка
	watcher, sourceMock, publisherMock, fakeClock := newTestWatcher(t)
	alerts := []models.CityRisk{{City: "Delhi", Risk: 0.82}}
	published := make(chan error, 2)

	// Ожидания
	sourceMock.EXPECT().Alerts(gomock.Any()).Return(alerts, nil).Times(2)
	gomock.InOrder(
		publisherMock.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event webhook.AlertEvent) error {
				err := fmt.Errorf("redis недоступен")
				published <- err
				return err
			}),
		publisherMock.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event webhook.AlertEvent) error {
				published <- nil
				return nil
			}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие
	watcher.Start(ctx)
	require.NoError(t, fakeClock.BlockUntilContext(ctx, 1))

	fakeClock.Advance(time.Minute)
	select {
	case err := <-published:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("первая публикация не была выполнена")
	}

	fakeClock.Advance(time.Minute)

	// Проверки
	// После ошибки публикации вотчер продолжает проверки
	select {
	case err := <-published:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("вторая публикация не была выполнена")
	}
}
