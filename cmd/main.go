package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	autoScheduleHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/auto_schedule"
	getSettingsHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/get_settings"
	listHolidaysHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/list_holidays"
	resetSettingsHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/reset_settings"
	updateSettingsHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/update_settings"
	validateOperationHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/validate_operation"
	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
	"github.com/m04kA/SMC-OutreachService/internal/config"
	"github.com/m04kA/SMC-OutreachService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/settings"
	settingsService "github.com/m04kA/SMC-OutreachService/internal/service/settings"
	autoScheduleUC "github.com/m04kA/SMC-OutreachService/internal/usecase/auto_schedule"
	validateOperationUC "github.com/m04kA/SMC-OutreachService/internal/usecase/validate_operation"
	"github.com/m04kA/SMC-OutreachService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OutreachService/pkg/logger"
	"github.com/m04kA/SMC-OutreachService/pkg/metrics"
)

func main() {
	configPath := os.Getenv("OUTREACH_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-OutreachService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Rules.Location()
	if err != nil {
		log.Fatal("Invalid time zone: %v", err)
	}
	limits := cfg.Rules.CapacityLimits()
	log.Info("Rules: max_batch=%d, warning_after=%d, delay=%s, time_zone=%s",
		limits.MaxBatchSize, limits.WarningThreshold, cfg.Rules.MessageDelay(), location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var settingsRepository *settingsRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
	} else {
		settingsRepository = settingsRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	validateOperationUseCase := validateOperationUC.NewUseCase(
		settingsRepository,
		limits,
		location,
		metricsCollector,
		log,
	)

	autoScheduleUseCase := autoScheduleUC.NewUseCase(
		settingsRepository,
		cfg.Rules.MessageDelay(),
		location,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	validateOperation := validateOperationHandler.NewHandler(validateOperationUseCase, log)
	autoSchedule := autoScheduleHandler.NewHandler(autoScheduleUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	resetSettings := resetSettingsHandler.NewHandler(settingsSvc, log)
	listHolidays := listHolidaysHandler.NewHandler(domain.BuiltinHolidays, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без X-User-ID)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Встроенный календарь праздников
	api.HandleFunc("/holidays", listHolidays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("/outreach").Subrouter()
	protected.Use(middleware.Auth)

	// --- Правила очереди ---
	// Проверка пакета перед постановкой в очередь
	protected.HandleFunc("/validate", validateOperation.Handle).Methods(http.MethodPost)

	// Автоматическое планирование времени отправки
	protected.HandleFunc("/schedule", autoSchedule.Handle).Methods(http.MethodPost)

	// --- Настройки пользователя ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/settings", resetSettings.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
