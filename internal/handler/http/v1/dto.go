package v1

// CreateCityRequest DTO для регистрации города
// @Description DTO для регистрации города
type CreateCityRequest struct {
	Name       string   `json:"name" validate:"required,min=2,max=255"`
	State      string   `json:"state" validate:"required"`
	Population int      `json:"population" validate:"gte=0"`
	AreaSqKm   *float64 `json:"area_sq_km,omitempty"`
	BaseRisk   float64  `json:"base_risk"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
}

// CityResponse DTO для ответа с информацией о городе
// @Description DTO для ответа с информацией о городе
type CityResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	State      string  `json:"state"`
	Population int     `json:"population"`
	AreaSqKm   float64 `json:"area_sq_km"`
	BaseRisk   float64 `json:"base_risk"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// CityRiskResponse DTO для города с текущей оценкой риска
// @Description DTO для города с текущей оценкой риска
type CityRiskResponse struct {
	City string  `json:"city"`
	Risk float64 `json:"risk"`
}

// TrendPointResponse DTO для точки тренда риска
// @Description DTO для точки тренда риска
type TrendPointResponse struct {
	Date      string  `json:"date"`
	RiskScore float64 `json:"risk_score"`
}

// PredictRiskRequest DTO для запроса прогноза риска
// @Description DTO для запроса прогноза риска
type PredictRiskRequest struct {
	City string `json:"city" validate:"required"`
	Date string `json:"date" validate:"required"`
}

// PredictionResponse DTO для ответа с прогнозом риска
// @Description DTO для ответа с прогнозом риска
type PredictionResponse struct {
	City          string  `json:"city"`
	Date          string  `json:"date"`
	PredictedRisk float64 `json:"predicted_risk"`
}

// SummaryResponse DTO для сводки рисков по всем городам
// @Description DTO для сводки рисков по всем городам
type SummaryResponse struct {
	HighestRiskCity CityRiskResponse `json:"highest_risk_city"`
	AverageRisk     float64          `json:"average_risk"`
	TotalCities     int              `json:"total_cities"`
}

// AlertsResponse DTO для списка городов с высоким риском
// @Description DTO для списка городов с высоким риском
type AlertsResponse struct {
	Alerts []CityRiskResponse `json:"alerts"`
	Count  int                `json:"count"`
}

// ChatRequest DTO для текстового запроса о рисках
// @Description DTO для текстового запроса о рисках
type ChatRequest struct {
	Query string `json:"query" validate:"required"`
}

// ChatResponse DTO для ответа на текстовый запрос
// @Description DTO для ответа на текстовый запрос
type ChatResponse struct {
	Response string `json:"response"`
}
