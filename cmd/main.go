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

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/fire_incidents_dashboard/internal/config"
	v1 "github.com/shenikar/fire_incidents_dashboard/internal/handler/http/v1"
	"github.com/shenikar/fire_incidents_dashboard/internal/repository"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
	"github.com/shenikar/fire_incidents_dashboard/internal/webhook"
	bqclient "github.com/shenikar/fire_incidents_dashboard/pkg/bigquery"
	"github.com/shenikar/fire_incidents_dashboard/pkg/logger"
	"github.com/shenikar/fire_incidents_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/fire_incidents_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/fire_incidents_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fire Incidents Dashboard API
// @version 1.0
// @description Filtering and aggregation of fire incident records loaded from a data warehouse.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newIncidentSource выбирает источник данных по DATA_SOURCE
func newIncidentSource(ctx context.Context, cfg *config.Config, dbpool *pgxpool.Pool) (service.IncidentSource, error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		return repository.NewMirrorSource(dbpool), nil
	case config.DataSourceBigQuery:
		svc, err := bqclient.NewBigQueryService(ctx, cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		return repository.NewWarehouseSource(svc, cfg.BigQueryProjectID, cfg.BigQueryDataset, cfg.BigQueryTable), nil
	}
	return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
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
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация источника и репозиториев
	source, err := newIncidentSource(ctx, cfg, dbpool)
	if err != nil {
		log.Fatalf("Failed to init incident source: %v", err)
	}
	log.WithField("source", source.Name()).Info("Incident source initialized")

	fetchLogRepo := repository.NewFetchLogRepository(dbpool)

	// Нулевой TTL отключает кеш строк
	var rowCache service.RowCache
	if cfg.RowsCacheTTL > 0 {
		rowCache = repository.NewRowCache(redisClient, cfg.RowsCacheTTL)
	}

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(source, fetchLogRepo, rowCache, webhookPublisher, log, cfg.BigQueryTimeout)

	// Первичная загрузка данных, ошибка не мешает старту сервера
	go func() {
		if _, err := dashboardService.Refresh(ctx, false); err != nil {
			log.WithError(err).Warn("Initial dashboard refresh failed")
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
