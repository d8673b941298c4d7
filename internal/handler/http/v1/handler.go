package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/health_risk_api/internal/config"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	cityService service.CityService
	riskService service.RiskService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(cityService service.CityService, riskService service.RiskService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		cityService: cityService,
		riskService: riskService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Register a new city
// @Description Register a new city with its static risk attributes.
// @Tags Cities
// @Accept json
// @Produce json
// @Param city body CreateCityRequest true "City creation request"
// @Success 201 {object} CityResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or duplicate name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities/ [post]
func (h *Handler) createCity(c *gin.Context) {
	var input CreateCityRequest
	log := h.logger.WithField("method", "createCity")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToCityModel(input)
	if err := h.cityService.CreateCity(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrCityExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city already exists"})
			return
		}
		log.WithError(err).Error("Failed to create city in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToCityResponse(model))
}

// @Summary Get a list of cities
// @Description Get a paginated list of all registered cities.
// @Tags Cities
// @Accept json
// @Produce json
// @Param skip query int false "Number of cities to skip" default(0)
// @Param limit query int false "Maximum number of cities to return" default(100)
// @Success 200 {array} CityResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities/ [get]
func (h *Handler) listCities(c *gin.Context) {
	log := h.logger.WithField("method", "listCities")
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	cities, err := h.cityService.ListCities(c.Request.Context(), skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list cities from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCityResponses(cities))
}

// @Summary Get heatmap data
// @Description Get the current risk score for every registered city.
// @Tags Risk
// @Accept json
// @Produce json
// @Success 200 {array} CityRiskResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /heatmap-data [get]
func (h *Handler) heatmapData(c *gin.Context) {
	log := h.logger.WithField("method", "heatmapData")

	data, err := h.riskService.HeatmapData(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build heatmap data in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCityRiskResponses(data))
}

// @Summary Get risk trend for a city
// @Description Get the risk scores of a city for the last seven days, oldest first.
// @Tags Risk
// @Accept json
// @Produce json
// @Param city query string true "City name"
// @Success 200 {array} TrendPointResponse
// @Failure 400 {object} map[string]string "Missing city query parameter"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trend [get]
func (h *Handler) riskTrend(c *gin.Context) {
	log := h.logger.WithField("method", "riskTrend")

	cityName := c.Query("city")
	if cityName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	points, err := h.riskService.Trend(c.Request.Context(), cityName)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
			return
		}
		log.WithError(err).Error("Failed to build trend in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToTrendPointResponses(points))
}

// @Summary Predict risk for a city on a date
// @Description Predict the risk score of a city on a given date in YYYY-MM-DD format.
// @Tags Risk
// @Accept json
// @Produce json
// @Param prediction body PredictRiskRequest true "Risk prediction request"
// @Success 200 {object} PredictionResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or bad date format"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /predict-risk [post]
func (h *Handler) predictRisk(c *gin.Context) {
	var input PredictRiskRequest
	log := h.logger.WithField("method", "predictRisk")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.riskService.PredictRisk(c.Request.Context(), input.City, input.Date)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
			return
		}
		if errors.Is(err, models.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		log.WithError(err).Error("Failed to predict risk in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToPredictionResponse(prediction))
}

// @Summary Get risk summary
// @Description Get the highest-risk city, the average risk and the total number of cities.
// @Tags Risk
// @Accept json
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /summary [get]
func (h *Handler) riskSummary(c *gin.Context) {
	log := h.logger.WithField("method", "riskSummary")

	summary, err := h.riskService.Summary(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build summary in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToSummaryResponse(summary))
}

// @Summary Get high-risk alerts
// @Description Get the cities whose current risk score is at or above the alert threshold.
// @Tags Risk
// @Accept json
// @Produce json
// @Success 200 {object} AlertsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) riskAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "riskAlerts")

	alerts, err := h.riskService.Alerts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute alerts in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AlertsResponse{
		Alerts: ModelsToCityRiskResponses(alerts),
		Count:  len(alerts),
	})
}

// @Summary Ask about health risks
// @Description Answer a free-form question about city risks, trends or alerts.
// @Tags Chat
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Chat request"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat [post]
func (h *Handler) chat(c *gin.Context) {
	var input ChatRequest
	log := h.logger.WithField("method", "chat")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.riskService.Chat(c.Request.Context(), input.Query)
	if err != nil {
		log.WithError(err).Error("Failed to answer chat query in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: answer})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
