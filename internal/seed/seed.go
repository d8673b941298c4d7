package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shenikar/health_risk_api/internal/models"
)

// DefaultCities возвращает стартовый набор городов
func DefaultCities() []models.City {
	return []models.City{
		{Name: "Delhi", State: "Delhi", Population: 20000000, AreaSqKm: 1500, BaseRisk: 0.65, Latitude: 28.6139, Longitude: 77.2090},
		{Name: "Mumbai", State: "Maharashtra", Population: 20000000, AreaSqKm: 600, BaseRisk: 0.55, Latitude: 19.0760, Longitude: 72.8777},
		{Name: "Bangalore", State: "Karnataka", Population: 12000000, AreaSqKm: 750, BaseRisk: 0.60, Latitude: 12.9716, Longitude: 77.5946},
		{Name: "Kolkata", State: "West Bengal", Population: 15000000, AreaSqKm: 206, BaseRisk: 0.65, Latitude: 22.5726, Longitude: 88.3639},
		{Name: "Chennai", State: "Tamil Nadu", Population: 11000000, AreaSqKm: 426, BaseRisk: 0.60, Latitude: 13.0827, Longitude: 80.2707},
	}
}

// LoadFromFile читает набор городов из JSON-файла
func LoadFromFile(path string) ([]models.City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var cities []models.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return cities, nil
}

// Cities возвращает набор городов для начальной загрузки:
// из файла, если путь задан, иначе встроенный набор
func Cities(path string) ([]models.City, error) {
	if path == "" {
		return DefaultCities(), nil
	}
	return LoadFromFile(path)
}
