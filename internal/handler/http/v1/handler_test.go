package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/health_risk_api/internal/config"
	"github.com/shenikar/health_risk_api/internal/models"
	"github.com/shenikar/health_risk_api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockCityService, *mocks.MockRiskService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockCityService := mocks.NewMockCityService(ctrl)
	mockRiskService := mocks.NewMockRiskService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RiskAlertThreshold: 0.75,
	}

	handler := NewHandler(mockCityService, mockRiskService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("")
	handler.RegisterRoutes(api)

	return handler, mockCityService, mockRiskService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCity_Handler_Success(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	area := 516.0
	reqBody := CreateCityRequest{
		Name:       "Pune",
		State:      "Maharashtra",
		Population: 7000000,
		AreaSqKm:   &area,
		BaseRisk:   0.5,
		Latitude:   18.5204,
		Longitude:  73.8567,
	}

	mockCityService.EXPECT().
		CreateCity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, city *models.City) error {
			city.ID = 6 // Симулируем, что БД присвоила ID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/cities/", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CityResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.ID)
	assert.Equal(t, "Pune", resp.Name)
	assert.InDelta(t, 516.0, resp.AreaSqKm, 1e-9)
}

func TestCreateCity_Handler_DefaultArea(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	// Площадь не указана, хендлер подставляет значение по умолчанию
	reqBody := CreateCityRequest{
		Name:       "Pune",
		State:      "Maharashtra",
		Population: 7000000,
		BaseRisk:   0.5,
	}

	mockCityService.EXPECT().
		CreateCity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, city *models.City) error {
			assert.InDelta(t, 1000.0, city.AreaSqKm, 1e-9)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/cities/", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CityResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, resp.AreaSqKm, 1e-9)
}

func TestCreateCity_Handler_InvalidJSON(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)

	mockCityService.EXPECT().CreateCity(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/cities/", bytes.NewBufferString(`{"name": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateCity_Handler_ValidationError(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	reqBody := CreateCityRequest{ // Отсутствует Name
		State:      "Maharashtra",
		Population: 7000000,
	}

	mockCityService.EXPECT().CreateCity(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/cities/", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateCity_Handler_Duplicate(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	reqBody := CreateCityRequest{
		Name:       "Delhi",
		State:      "Delhi",
		Population: 20000000,
	}

	mockCityService.EXPECT().
		CreateCity(gomock.Any(), gomock.Any()).
		Return(models.ErrCityExists).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/cities/", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "city already exists")
}

func TestCreateCity_Handler_ServiceError(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	reqBody := CreateCityRequest{
		Name:       "Pune",
		State:      "Maharashtra",
		Population: 7000000,
	}
	serviceError := errors.New("failed to create city in service")

	mockCityService.EXPECT().
		CreateCity(gomock.Any(), gomock.Any()).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/cities/", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListCities_Handler_Success(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	expectedCities := []*models.City{
		{ID: 1, Name: "Delhi", State: "Delhi"},
		{ID: 2, Name: "Mumbai", State: "Maharashtra"},
	}

	mockCityService.EXPECT().ListCities(gomock.Any(), 0, 2).Return(expectedCities, nil).Times(1)

	w := makeRequest(router, "GET", "/cities/?skip=0&limit=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CityResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Delhi", resp[0].Name)
}

func TestListCities_Handler_DefaultPagination(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)

	mockCityService.EXPECT().ListCities(gomock.Any(), 0, 100).Return([]*models.City{}, nil).Times(1)

	w := makeRequest(router, "GET", "/cities/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCities_Handler_BadQueryIgnored(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)

	// Нечисловые параметры пагинации превращаются в нули
	mockCityService.EXPECT().ListCities(gomock.Any(), 0, 0).Return([]*models.City{}, nil).Times(1)

	w := makeRequest(router, "GET", "/cities/?skip=abc&limit=xyz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCities_Handler_ServiceError(t *testing.T) {
	_, mockCityService, _, router := newTestHandler(t)
	serviceError := errors.New("failed to list cities")

	mockCityService.EXPECT().ListCities(gomock.Any(), 0, 100).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/cities/", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHeatmapData_Handler_Success(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	expectedData := []models.CityRisk{
		{City: "Delhi", Risk: 0.72},
		{City: "Mumbai", Risk: 0.70},
	}

	mockRiskService.EXPECT().HeatmapData(gomock.Any()).Return(expectedData, nil).Times(1)

	w := makeRequest(router, "GET", "/heatmap-data", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CityRiskResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Delhi", resp[0].City)
	assert.InDelta(t, 0.72, resp[0].Risk, 1e-9)
}

func TestHeatmapData_Handler_ServiceError(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	serviceError := errors.New("failed to build heatmap")

	mockRiskService.EXPECT().HeatmapData(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/heatmap-data", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRiskTrend_Handler_Success(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	expectedPoints := []models.TrendPoint{
		{Date: "2025-01-13", RiskScore: 0.71},
		{Date: "2025-01-14", RiskScore: 0.73},
		{Date: "2025-01-15", RiskScore: 0.72},
	}

	mockRiskService.EXPECT().Trend(gomock.Any(), "Delhi").Return(expectedPoints, nil).Times(1)

	w := makeRequest(router, "GET", "/trend?city=Delhi", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []TrendPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 3)
	assert.Equal(t, "2025-01-13", resp[0].Date)
}

func TestRiskTrend_Handler_MissingCity(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)

	mockRiskService.EXPECT().Trend(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/trend", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "city query parameter is required")
}

func TestRiskTrend_Handler_CityNotFound(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)

	mockRiskService.EXPECT().Trend(gomock.Any(), "Atlantis").Return(nil, models.ErrCityNotFound).Times(1)

	w := makeRequest(router, "GET", "/trend?city=Atlantis", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "city not found")
}

func TestPredictRisk_Handler_Success(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	reqBody := PredictRiskRequest{
		City: "Delhi",
		Date: "2025-06-10",
	}
	expectedPrediction := &models.RiskPrediction{
		City:          "Delhi",
		Date:          "2025-06-10",
		PredictedRisk: 0.82,
	}

	mockRiskService.EXPECT().PredictRisk(gomock.Any(), "Delhi", "2025-06-10").Return(expectedPrediction, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/predict-risk", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp PredictionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", resp.City)
	assert.Equal(t, "2025-06-10", resp.Date)
	assert.InDelta(t, 0.82, resp.PredictedRisk, 1e-9)
}

func TestPredictRisk_Handler_ValidationError(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	reqBody := PredictRiskRequest{ // Отсутствует Date
		City: "Delhi",
	}

	mockRiskService.EXPECT().PredictRisk(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/predict-risk", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Date' failed on the 'required' tag")
}

func TestPredictRisk_Handler_CityNotFound(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	reqBody := PredictRiskRequest{
		City: "Atlantis",
		Date: "2025-06-10",
	}

	mockRiskService.EXPECT().
		PredictRisk(gomock.Any(), "Atlantis", "2025-06-10").
		Return(nil, models.ErrCityNotFound).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/predict-risk", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "city not found")
}

func TestPredictRisk_Handler_InvalidDate(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	reqBody := PredictRiskRequest{
		City: "Delhi",
		Date: "10-06-2025",
	}

	mockRiskService.EXPECT().
		PredictRisk(gomock.Any(), "Delhi", "10-06-2025").
		Return(nil, models.ErrInvalidDate).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/predict-risk", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date format, use YYYY-MM-DD")
}

func TestRiskSummary_Handler_Success(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	expectedSummary := &models.RiskSummary{
		HighestRiskCity: models.CityRisk{City: "Delhi", Risk: 0.72},
		AverageRisk:     0.71,
		TotalCities:     2,
	}

	mockRiskService.EXPECT().Summary(gomock.Any()).Return(expectedSummary, nil).Times(1)

	w := makeRequest(router, "GET", "/summary", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SummaryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", resp.HighestRiskCity.City)
	assert.InDelta(t, 0.71, resp.AverageRisk, 1e-9)
	assert.Equal(t, 2, resp.TotalCities)
}

func TestRiskSummary_Handler_EmptyStore(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	expectedSummary := &models.RiskSummary{
		HighestRiskCity: models.CityRisk{City: "N/A", Risk: 0},
	}

	mockRiskService.EXPECT().Summary(gomock.Any()).Return(expectedSummary, nil).Times(1)

	w := makeRequest(router, "GET", "/summary", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SummaryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "N/A", resp.HighestRiskCity.City)
	assert.Zero(t, resp.TotalCities)
}

func TestRiskAlerts_Handler_Success(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	expectedAlerts := []models.CityRisk{
		{City: "Delhi", Risk: 0.82},
		{City: "Kolkata", Risk: 0.78},
	}

	mockRiskService.EXPECT().Alerts(gomock.Any()).Return(expectedAlerts, nil).Times(1)

	w := makeRequest(router, "GET", "/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 2)
	assert.Equal(t, 2, resp.Count)
}

func TestRiskAlerts_Handler_Empty(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)

	mockRiskService.EXPECT().Alerts(gomock.Any()).Return([]models.CityRisk{}, nil).Times(1)

	w := makeRequest(router, "GET", "/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	// Пустой список сериализуется как [], а не null
	assert.Contains(t, w.Body.String(), `"alerts":[]`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestChat_Handler_Success(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	reqBody := ChatRequest{Query: "What is the risk in Delhi?"}

	mockRiskService.EXPECT().
		Chat(gomock.Any(), "What is the risk in Delhi?").
		Return("The current health risk in Delhi is 0.72.", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/chat", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "The current health risk in Delhi is 0.72.", resp.Response)
}

func TestChat_Handler_ValidationError(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)

	mockRiskService.EXPECT().Chat(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/chat", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Query' failed on the 'required' tag")
}

func TestChat_Handler_ServiceError(t *testing.T) {
	_, _, mockRiskService, router := newTestHandler(t)
	reqBody := ChatRequest{Query: "What is the risk in Delhi?"}
	serviceError := errors.New("failed to answer chat query")

	mockRiskService.EXPECT().Chat(gomock.Any(), gomock.Any()).Return("", serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/chat", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Handler(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
