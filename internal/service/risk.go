package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/health_risk_api/internal/config"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/observability"
	"github.com/shenikar/health_risk_api/internal/risk"
	"github.com/sirupsen/logrus"
)

const (
	dateLayout = "2006-01-02"
	trendDays  = 7
)

// RiskService определяет контракт для расчетных операций над риском
type RiskService interface {
	HeatmapData(ctx context.Context) ([]models.CityRisk, error)
	Trend(ctx context.Context, cityName string) ([]models.TrendPoint, error)
	PredictRisk(ctx context.Context, cityName, date string) (*models.RiskPrediction, error)
	Summary(ctx context.Context) (*models.RiskSummary, error)
	Alerts(ctx context.Context) ([]models.CityRisk, error)
	Chat(ctx context.Context, query string) (string, error)
}

type riskService struct {
	repo    CityRepository
	cities  CityService
	model   *risk.Model
	clock   clockwork.Clock
	cfg     *config.Config
	logger  *logrus.Logger
	metrics *observability.Metrics
}

func NewRiskService(
	repo CityRepository,
	cities CityService,
	model *risk.Model,
	clock clockwork.Clock,
	cfg *config.Config,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) RiskService {
	return &riskService{
		repo:    repo,
		cities:  cities,
		model:   model,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// score вычисляет риск города на дату и учитывает расчет в метриках
func (s *riskService) score(city *models.City, date time.Time) float64 {
	s.metrics.RiskScores.Inc()
	return s.model.Score(city.BaseRisk, date, city.Population, city.AreaSqKm)
}

// HeatmapData возвращает текущую оценку риска для всех городов
func (s *riskService) HeatmapData(ctx context.Context) ([]models.CityRisk, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "HeatmapData",
	})

	cities, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list cities from repository")
		return nil, fmt.Errorf("service: could not build heatmap: %w", err)
	}

	now := s.clock.Now()
	data := make([]models.CityRisk, 0, len(cities))
	for _, city := range cities {
		data = append(data, models.CityRisk{
			City: city.Name,
			Risk: s.score(city, now),
		})
	}

	log.WithField("count", len(data)).Info("Heatmap data built")
	return data, nil
}

// Trend возвращает риск города за последние семь дней, от старых к новым
func (s *riskService) Trend(ctx context.Context, cityName string) ([]models.TrendPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "Trend",
		"city":    cityName,
	})

	city, err := s.cities.GetCityByName(ctx, cityName)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			log.Warn("City not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get city")
		return nil, fmt.Errorf("service: could not build trend: %w", err)
	}

	today := s.clock.Now()
	points := make([]models.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, models.TrendPoint{
			Date:      day.Format(dateLayout),
			RiskScore: s.score(city, day),
		})
	}

	log.Info("Trend built")
	return points, nil
}

// PredictRisk возвращает прогноз риска города на дату в формате YYYY-MM-DD.
// Имя города проверяется раньше даты.
func (s *riskService) PredictRisk(ctx context.Context, cityName, date string) (*models.RiskPrediction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "PredictRisk",
		"city":    cityName,
		"date":    date,
	})

	city, err := s.cities.GetCityByName(ctx, cityName)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			log.Warn("City not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get city")
		return nil, fmt.Errorf("service: could not predict risk: %w", err)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		log.Warn("Invalid date format")
		return nil, models.ErrInvalidDate
	}

	prediction := &models.RiskPrediction{
		City:          city.Name,
		Date:          date,
		PredictedRisk: s.score(city, day),
	}

	log.Info("Risk predicted")
	return prediction, nil
}

// Summary возвращает сводку по всем городам. Для пустого хранилища
// отдается заглушка c городом "N/A" и нулевыми значениями.
func (s *riskService) Summary(ctx context.Context) (*models.RiskSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "Summary",
	})

	cities, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list cities from repository")
		return nil, fmt.Errorf("service: could not build summary: %w", err)
	}

	if len(cities) == 0 {
		log.Info("No cities in store, returning empty summary")
		return &models.RiskSummary{
			HighestRiskCity: models.CityRisk{City: "N/A", Risk: 0},
		}, nil
	}

	now := s.clock.Now()
	var highest models.CityRisk
	total := 0.0
	for i, city := range cities {
		r := s.score(city, now)
		total += r
		// При равных значениях побеждает первый по порядку добавления
		if i == 0 || r > highest.Risk {
			highest = models.CityRisk{City: city.Name, Risk: r}
		}
	}

	summary := &models.RiskSummary{
		HighestRiskCity: highest,
		AverageRisk:     math.Round(total/float64(len(cities))*100) / 100,
		TotalCities:     len(cities),
	}

	log.WithField("total_cities", summary.TotalCities).Info("Summary built")
	return summary, nil
}

// Alerts возвращает города, чей риск не ниже порога
func (s *riskService) Alerts(ctx context.Context) ([]models.CityRisk, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "Alerts",
	})

	cities, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list cities from repository")
		return nil, fmt.Errorf("service: could not compute alerts: %w", err)
	}

	alerts := s.collectAlerts(cities, s.clock.Now())

	log.WithField("count", len(alerts)).Info("High-risk alerts computed")
	return alerts, nil
}

// collectAlerts отбирает города с риском не ниже порога.
// Отчетное значение берется отдельным расчетом и из-за шума может
// отличаться от значения, по которому город прошел порог.
func (s *riskService) collectAlerts(cities []*models.City, now time.Time) []models.CityRisk {
	alerts := make([]models.CityRisk, 0)
	for _, city := range cities {
		if s.score(city, now) >= s.cfg.RiskAlertThreshold {
			alerts = append(alerts, models.CityRisk{
				City: city.Name,
				Risk: s.score(city, now),
			})
		}
	}
	return alerts
}

// Chat отвечает на текстовый запрос о рисках. Состояние между запросами
// не хранится.
func (s *riskService) Chat(ctx context.Context, query string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "Chat",
	})

	q := strings.ToLower(query)

	cities, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list cities from repository")
		return "", fmt.Errorf("service: could not answer chat query: %w", err)
	}

	now := s.clock.Now()

	// Первый упомянутый город в порядке добавления
	for _, city := range cities {
		if !strings.Contains(q, strings.ToLower(city.Name)) {
			continue
		}
		if strings.Contains(q, "risk") {
			s.metrics.ChatQueries.WithLabelValues("city_risk").Inc()
			return fmt.Sprintf("The current health risk in %s is %v.", city.Name, s.score(city, now)), nil
		}
		if strings.Contains(q, "trend") {
			s.metrics.ChatQueries.WithLabelValues("city_trend").Inc()
			return fmt.Sprintf("You can check the risk trend at /trend?city=%s", city.Name), nil
		}
	}

	if strings.Contains(q, "high risk") || strings.Contains(q, "alerts") {
		s.metrics.ChatQueries.WithLabelValues("high_risk").Inc()
		alerts := s.collectAlerts(cities, now)
		if len(alerts) == 0 {
			return "No high-risk cities right now.", nil
		}
		parts := make([]string, 0, len(alerts))
		for _, a := range alerts {
			parts = append(parts, fmt.Sprintf("%s (%v)", a.City, a.Risk))
		}
		return "High-risk cities: " + strings.Join(parts, ", "), nil
	}

	s.metrics.ChatQueries.WithLabelValues("help").Inc()
	return "Ask about a city's risk, risk trend, or high-risk alerts.", nil
}
