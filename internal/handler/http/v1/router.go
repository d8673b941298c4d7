package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления городами
	cities := api.Group("/cities")
	{
		cities.POST("/", h.createCity)
		cities.GET("/", h.listCities)
	}

	// Маршруты расчетов риска
	api.GET("/heatmap-data", h.heatmapData)
	api.GET("/trend", h.riskTrend)
	api.POST("/predict-risk", h.predictRisk)
	api.GET("/summary", h.riskSummary)
	api.GET("/alerts", h.riskAlerts)

	// Маршрут текстовых запросов
	api.POST("/chat", h.chat)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
