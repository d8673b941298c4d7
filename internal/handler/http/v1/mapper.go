package v1

import "github.com/shenikar/health_risk_api/internal/models"

// defaultAreaSqKm подставляется, когда площадь не указана в запросе
const defaultAreaSqKm = 1000.0

// DTOToCityModel преобразует DTO создания в доменную модель.
// Отсутствующая площадь заменяется значением по умолчанию.
func DTOToCityModel(dto CreateCityRequest) *models.City {
	area := defaultAreaSqKm
	if dto.AreaSqKm != nil {
		area = *dto.AreaSqKm
	}
	return &models.City{
		Name:       dto.Name,
		State:      dto.State,
		Population: dto.Population,
		AreaSqKm:   area,
		BaseRisk:   dto.BaseRisk,
		Latitude:   dto.Latitude,
		Longitude:  dto.Longitude,
	}
}

// ModelToCityResponse преобразует доменную модель в DTO для ответа
func ModelToCityResponse(model *models.City) *CityResponse {
	return &CityResponse{
		ID:         model.ID,
		Name:       model.Name,
		State:      model.State,
		Population: model.Population,
		AreaSqKm:   model.AreaSqKm,
		BaseRisk:   model.BaseRisk,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
	}
}

// ModelsToCityResponses преобразует слайс моделей в слайс DTO
func ModelsToCityResponses(models []*models.City) []*CityResponse {
	responses := make([]*CityResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCityResponse(model)
	}
	return responses
}

// ModelsToCityRiskResponses преобразует слайс оценок риска в слайс DTO
func ModelsToCityRiskResponses(risks []models.CityRisk) []CityRiskResponse {
	responses := make([]CityRiskResponse, len(risks))
	for i, risk := range risks {
		responses[i] = CityRiskResponse{
			City: risk.City,
			Risk: risk.Risk,
		}
	}
	return responses
}

// ModelsToTrendPointResponses преобразует слайс точек тренда в слайс DTO
func ModelsToTrendPointResponses(points []models.TrendPoint) []TrendPointResponse {
	responses := make([]TrendPointResponse, len(points))
	for i, point := range points {
		responses[i] = TrendPointResponse{
			Date:      point.Date,
			RiskScore: point.RiskScore,
		}
	}
	return responses
}

// ModelToPredictionResponse преобразует прогноз риска в DTO для ответа
func ModelToPredictionResponse(model *models.RiskPrediction) *PredictionResponse {
	return &PredictionResponse{
		City:          model.City,
		Date:          model.Date,
		PredictedRisk: model.PredictedRisk,
	}
}

// ModelToSummaryResponse преобразует сводку рисков в DTO для ответа
func ModelToSummaryResponse(model *models.RiskSummary) *SummaryResponse {
	return &SummaryResponse{
		HighestRiskCity: CityRiskResponse{
			City: model.HighestRiskCity.City,
			Risk: model.HighestRiskCity.Risk,
		},
		AverageRisk: model.AverageRisk,
		TotalCities: model.TotalCities,
	}
}
