package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/health_risk_api/internal/config"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker — вспомогательная функция для создания воркера без Redis.
// processAlertEvent не трогает очередь, поэтому клиент Redis не нужен.
func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewWebhookWorker(nil, logger, cfg, observability.NewMetricsForTesting())
}

func testAlertEvent(t *testing.T) (AlertEvent, string) {
	t.Helper()

	event := AlertEvent{
		EventID:   uuid.New(),
		Timestamp: time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
		Threshold: 0.75,
		Alerts: []models.CityRisk{
			{City: "Delhi", Risk: 0.82},
		},
		Count: 1,
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	return event, string(payload)
}

func TestProcessAlertEvent_Delivered(t *testing.T) {
	// Подготовка
	var (
		mu       sync.Mutex
		attempts int
		gotBody  string
		gotSig   string
		gotType  string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		attempts++
		gotBody = string(body)
		gotSig = r.Header.Get("X-Webhook-Signature")
		gotType = r.Header.Get("Content-Type")
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testAlertEvent(t)

	// Действие
	worker.processAlertEvent(context.Background(), event, payload)

	// Проверки
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, attempts)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSig)
}

func TestProcessAlertEvent_RetriesThenSucceeds(t *testing.T) {
	// Подготовка
	var (
		mu       sync.Mutex
		attempts int
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		// Первые две попытки падают, третья проходит
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testAlertEvent(t)

	// Действие
	worker.processAlertEvent(context.Background(), event, payload)

	// Проверки
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, attempts)
}

func TestProcessAlertEvent_GivesUpAfterMaxRetries(t *testing.T) {
	// Подготовка
	var (
		mu       sync.Mutex
		attempts int
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testAlertEvent(t)

	// Действие
	worker.processAlertEvent(context.Background(), event, payload)

	// Проверки
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}

func TestProcessAlertEvent_SkipsWithoutURL(t *testing.T) {
	// Подготовка
	var (
		mu       sync.Mutex
		attempts int
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// URL намеренно не задан
	worker := newTestWorker(&config.Config{
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testAlertEvent(t)

	// Действие
	worker.processAlertEvent(context.Background(), event, payload)

	// Проверки
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, attempts)
}

func TestProcessAlertEvent_NoSignatureWithoutSecret(t *testing.T) {
	// Подготовка
	var (
		mu     sync.Mutex
		gotSig string
		seen   bool
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotSig = r.Header.Get("X-Webhook-Signature")
		seen = true
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testAlertEvent(t)

	// Действие
	worker.processAlertEvent(context.Background(), event, payload)

	// Проверки
	mu.Lock()
	defer mu.Unlock()
	require.True(t, seen)
	assert.Empty(t, gotSig)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Известный вектор HMAC-SHA256
	signature := generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key")
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", signature)
}
