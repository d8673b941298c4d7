package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/health_risk_api/internal/config"
	v1 "github.com/shenikar/health_risk_api/internal/handler/http/v1"
	"github.com/shenikar/health_risk_api/internal/monitor"
	"github.com/shenikar/health_risk_api/internal/observability"
	"github.com/shenikar/health_risk_api/internal/repository"
	"github.com/shenikar/health_risk_api/internal/risk"
	"github.com/shenikar/health_risk_api/internal/seed"
	"github.com/shenikar/health_risk_api/internal/service"
	"github.com/shenikar/health_risk_api/internal/webhook"
	"github.com/shenikar/health_risk_api/pkg/logger"
	"github.com/shenikar/health_risk_api/pkg/postgres"
	redisclient "github.com/shenikar/health_risk_api/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/health_risk_api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Health Risk API
// @version 1.0
// @description Health risk scoring service for cities.
// @host localhost:8080
// @BasePath /
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики и источник времени
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Модель риска со стандартным источником шума
	riskModel := risk.NewModel(nil)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, metrics)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	cityRepo := repository.NewCityRepository(dbpool, redisClient)

	// Инициализация сервисов
	cityService := service.NewCityService(cityRepo, log)
	riskService := service.NewRiskService(cityRepo, cityService, riskModel, clock, cfg, log, metrics)

	// Стартовый набор городов
	seedCities, err := seed.Cities(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed cities: %v", err)
	}
	if err := cityService.EnsureSeedCities(ctx, seedCities); err != nil {
		log.Fatalf("Failed to seed cities: %v", err)
	}

	// Запуск периодической проверки рисков
	alertWatcher := monitor.NewAlertWatcher(riskService, webhookPublisher, clock, cfg, log, metrics)
	alertWatcher.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(cityService, riskService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()

	// CORS: без явного списка источников разрешаем все
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Счетчик HTTP-запросов
	router.Use(metrics.GinMiddleware())

	api := router.Group("")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Статическая панель мониторинга
	router.StaticFile("/", "./static/index.html")
	router.Static("/static", "./static")

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
