package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/service"
)

type CityRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewCityRepository(db *pgxpool.Pool, redisClient *redis.Client) service.CityRepository {
	return &CityRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о городе в бд.
// Уникальность имени обеспечивает индекс, поэтому проверка и вставка атомарны.
func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	query := `
		INSERT INTO cities (name, state, population, area_sq_km, base_risk, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		city.Name,
		city.State,
		city.Population,
		city.AreaSqKm,
		city.BaseRisk,
		city.Latitude,
		city.Longitude,
	).Scan(&city.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return models.ErrCityExists
		}
		return fmt.Errorf("failed to create city: %w", err)
	}
	return nil
}

// GetByName возвращает город по точному имени
func (r *CityRepository) GetByName(ctx context.Context, name string) (*models.City, error) {
	city := &models.City{}
	query := `
		SELECT id, name, state, population, area_sq_km, base_risk, latitude, longitude
		FROM cities
		WHERE name = $1;
	`
	err := r.db.QueryRow(ctx, query, name).Scan(
		&city.ID,
		&city.Name,
		&city.State,
		&city.Population,
		&city.AreaSqKm,
		&city.BaseRisk,
		&city.Latitude,
		&city.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCityNotFound
		}
		return nil, fmt.Errorf("failed to get city by name: %w", err)
	}
	return city, nil
}

// List возвращает города в порядке добавления с пагинацией
func (r *CityRepository) List(ctx context.Context, offset, limit int) ([]*models.City, error) {
	query := `
		SELECT id, name, state, population, area_sq_km, base_risk, latitude, longitude
		FROM cities
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}

// ListAll возвращает все города в порядке добавления.
// Читается всегда из бд, чтобы каждый запрос видел актуальный набор.
func (r *CityRepository) ListAll(ctx context.Context) ([]*models.City, error) {
	query := `
		SELECT id, name, state, population, area_sq_km, base_risk, latitude, longitude
		FROM cities
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all cities: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}

// Count возвращает количество городов
func (r *CityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cities;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cities: %w", err)
	}
	return count, nil
}

func scanCities(rows pgx.Rows) ([]*models.City, error) {
	cities := make([]*models.City, 0)
	for rows.Next() {
		city := &models.City{}
		err := rows.Scan(
			&city.ID,
			&city.Name,
			&city.State,
			&city.Population,
			&city.AreaSqKm,
			&city.BaseRisk,
			&city.Latitude,
			&city.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cities, nil
}

// GetCityFromCache пытается получить город из Redis
func (r *CityRepository) GetCityFromCache(ctx context.Context, name string) (*models.City, error) {
	key := fmt.Sprintf("city:%s", name)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get city from cache: %w", err)
	}

	city := &models.City{}
	if err := json.Unmarshal(val, city); err != nil {
		return nil, fmt.Errorf("failed to unmarshal city from cache: %w", err)
	}
	return city, nil
}

// SetCityCache сохраняет город в Redis
func (r *CityRepository) SetCityCache(ctx context.Context, city *models.City) error {
	key := fmt.Sprintf("city:%s", city.Name)
	val, err := json.Marshal(city)
	if err != nil {
		return fmt.Errorf("failed to marshal city for cache: %w", err)
	}
	// Записи городов не изменяются после вставки, 5 минут достаточно
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set city in cache: %w", err)
	}
	return nil
}

// InvalidateCityCache удаляет город из Redis кэша
func (r *CityRepository) InvalidateCityCache(ctx context.Context, name string) error {
	key := fmt.Sprintf("city:%s", name)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate city cache: %w", err)
	}
	return nil
}
