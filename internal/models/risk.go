package models

// CityRisk - текущая оценка риска для одного города
type CityRisk struct {
	City string  `json:"city"`
	Risk float64 `json:"risk"`
}

// TrendPoint - точка временного ряда риска
type TrendPoint struct {
	Date      string  `json:"date"`
	RiskScore float64 `json:"risk_score"`
}

// RiskPrediction - прогноз риска на указанную дату
type RiskPrediction struct {
	City          string  `json:"city"`
	Date          string  `json:"date"`
	PredictedRisk float64 `json:"predicted_risk"`
}

// RiskSummary - сводка по рискам всех городов
type RiskSummary struct {
	HighestRiskCity CityRisk `json:"highest_risk_city"`
	AverageRisk     float64  `json:"average_risk"`
	TotalCities     int      `json:"total_cities"`
}
