package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/sirupsen/logrus"
)

// CityRepository определяет контракт для работы с бд городов
type CityRepository interface {
	Create(ctx context.Context, city *models.City) error
	GetByName(ctx context.Context, name string) (*models.City, error)
	List(ctx context.Context, offset, limit int) ([]*models.City, error)
	ListAll(ctx context.Context) ([]*models.City, error)
	Count(ctx context.Context) (int, error)
	GetCityFromCache(ctx context.Context, name string) (*models.City, error)
	SetCityCache(ctx context.Context, city *models.City) error
	InvalidateCityCache(ctx context.Context, name string) error
}

// CityService определяет контракт для бизнес-логики управления городами
type CityService interface {
	CreateCity(ctx context.Context, city *models.City) error
	ListCities(ctx context.Context, skip, limit int) ([]*models.City, error)
	GetCityByName(ctx context.Context, name string) (*models.City, error)
	EnsureSeedCities(ctx context.Context, cities []models.City) error
}

type cityService struct {
	repo   CityRepository
	logger *logrus.Logger
}

func NewCityService(repo CityRepository, logger *logrus.Logger) CityService {
	return &cityService{
		repo:   repo,
		logger: logger,
	}
}

// CreateCity регистрирует новый город
func (s *cityService) CreateCity(ctx context.Context, city *models.City) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "CreateCity",
		"name":    city.Name,
	})
	log.Info("Attempting to create a new city")

	if err := s.repo.Create(ctx, city); err != nil {
		if errors.Is(err, models.ErrCityExists) {
			log.Warn("City with this name already exists")
			return err
		}
		log.WithError(err).Error("Failed to create city in repository")
		return fmt.Errorf("service: could not create city: %w", err)
	}

	if err := s.repo.InvalidateCityCache(ctx, city.Name); err != nil {
		log.WithError(err).Warn("Failed to invalidate city cache")
	}

	log.WithField("city_id", city.ID).Info("City created successfully")
	return nil
}

// ListCities возвращает список городов с пагинацией
func (s *cityService) ListCities(ctx context.Context, skip, limit int) ([]*models.City, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "ListCities",
		"skip":    skip,
		"limit":   limit,
	})
	log.Info("Listing cities")

	cities, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list cities from repository")
		return nil, fmt.Errorf("service: could not list cities: %w", err)
	}

	log.WithField("count", len(cities)).Info("Cities listed successfully")
	return cities, nil
}

// GetCityByName получает город по имени, сначала из кеша, затем из бд
func (s *cityService) GetCityByName(ctx context.Context, name string) (*models.City, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "GetCityByName",
		"city":    name,
	})

	cached, err := s.repo.GetCityFromCache(ctx, name)
	if err != nil {
		log.WithError(err).Warn("Failed to get city from cache")
	}
	if cached != nil {
		log.Debug("City fetched from cache")
		return cached, nil
	}

	city, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			log.Warn("City not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get city from repository")
		return nil, fmt.Errorf("service: could not get city: %w", err)
	}

	if err := s.repo.SetCityCache(ctx, city); err != nil {
		log.WithError(err).Warn("Failed to cache city")
	}

	return city, nil
}

// EnsureSeedCities вставляет стартовый набор городов, если хранилище пустое
func (s *cityService) EnsureSeedCities(ctx context.Context, cities []models.City) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "city",
		"method":  "EnsureSeedCities",
	})

	count, err := s.repo.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count cities")
		return fmt.Errorf("service: could not count cities: %w", err)
	}
	if count > 0 {
		log.WithField("count", count).Info("Cities already present, skipping seed")
		return nil
	}

	for i := range cities {
		city := cities[i]
		if err := s.repo.Create(ctx, &city); err != nil {
			// Параллельный старт мог уже вставить этот город
			if errors.Is(err, models.ErrCityExists) {
				continue
			}
			log.WithError(err).Error("Failed to insert seed city")
			return fmt.Errorf("service: could not seed city %s: %w", city.Name, err)
		}
	}

	log.WithField("count", len(cities)).Info("Seed cities inserted")
	return nil
}
