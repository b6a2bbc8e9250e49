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

	attachFeedbackHandler "github.com/tablebook/reservation-service/internal/api/handlers/attach_feedback"
	cancelReservationHandler "github.com/tablebook/reservation-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/tablebook/reservation-service/internal/api/handlers/create_reservation"
	editReservationHandler "github.com/tablebook/reservation-service/internal/api/handlers/edit_reservation"
	getAvailableTablesHandler "github.com/tablebook/reservation-service/internal/api/handlers/get_available_tables"
	getLocationReservationsHandler "github.com/tablebook/reservation-service/internal/api/handlers/get_location_reservations"
	getReservationHandler "github.com/tablebook/reservation-service/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/tablebook/reservation-service/internal/api/handlers/get_user_reservations"
	postponeReservationHandler "github.com/tablebook/reservation-service/internal/api/handlers/postpone_reservation"
	staffCancelReservationHandler "github.com/tablebook/reservation-service/internal/api/handlers/staff_cancel_reservation"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	"github.com/tablebook/reservation-service/internal/config"
	reservationRepo "github.com/tablebook/reservation-service/internal/infra/storage/reservation"
	waiterRepo "github.com/tablebook/reservation-service/internal/infra/storage/waiter"
	tableCatalogClient "github.com/tablebook/reservation-service/internal/integrations/tablecatalog"
	statusScheduler "github.com/tablebook/reservation-service/internal/scheduler"
	reservationsService "github.com/tablebook/reservation-service/internal/service/reservations"
	waitersService "github.com/tablebook/reservation-service/internal/service/waiters"
	createReservationUC "github.com/tablebook/reservation-service/internal/usecase/create_reservation"
	editReservationUC "github.com/tablebook/reservation-service/internal/usecase/edit_reservation"
	getAvailableTablesUC "github.com/tablebook/reservation-service/internal/usecase/get_available_tables"
	"github.com/tablebook/reservation-service/pkg/dbmetrics"
	"github.com/tablebook/reservation-service/pkg/logger"
	"github.com/tablebook/reservation-service/pkg/metrics"
	"github.com/tablebook/reservation-service/pkg/simpletxmanager"
	"github.com/tablebook/reservation-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона, в которой определяется "сегодня"
	timezone, err := time.LoadLocation(cfg.Service.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Service.Timezone, err)
	}
	log.Info("Service timezone: %s", cfg.Service.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента каталога столов
	catalogClient := tableCatalogClient.NewClient(
		cfg.TableCatalog.URL,
		time.Duration(cfg.TableCatalog.Timeout)*time.Second,
		log,
	)
	log.Info("TableCatalog client initialized (url=%s, timeout=%ds)",
		cfg.TableCatalog.URL, cfg.TableCatalog.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		waiterRepository      *waiterRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		waiterRepository = waiterRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		waiterRepository = waiterRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	waiterSvc := waitersService.NewService(waiterRepository, txMgr, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogClient,
		waiterSvc,
		txMgr,
		timezone,
		log,
	)
	editReservationUseCase := editReservationUC.NewUseCase(
		reservationRepository,
		catalogClient,
		waiterSvc,
		txMgr,
		timezone,
		log,
	)
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		reservationRepository,
		catalogClient,
		timezone,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	editReservation := editReservationHandler.NewHandler(editReservationUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	staffCancelReservation := staffCancelReservationHandler.NewHandler(reservationSvc, log)
	postponeReservation := postponeReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getLocationReservations := getLocationReservationsHandler.NewHandler(reservationSvc, log)
	attachFeedback := attachFeedbackHandler.NewHandler(reservationSvc, log)

	// Запускаем планировщик статусов
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	sched := statusScheduler.New(reservationRepository, reservationSvc, timezone, log)
	go sched.Run(schedulerCtx)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных столов и слотов
	api.HandleFunc("/locations/{locationId}/available-tables",
		getAvailableTables.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (walk-in через guestName)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение бронирования владельцем
	protected.HandleFunc("/reservations/{reservationId}", editReservation.Handle).Methods(http.MethodPut)

	// Отмена бронирования владельцем (мягкая)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Отмена бронирования официантом (жёсткая, удаление)
	protected.HandleFunc("/reservations/{reservationId}", staffCancelReservation.Handle).Methods(http.MethodDelete)

	// Перенос бронирования
	protected.HandleFunc("/reservations/{reservationId}/postpone", postponeReservation.Handle).Methods(http.MethodPatch)

	// Привязка отзыва
	protected.HandleFunc("/reservations/{reservationId}/feedback", attachFeedback.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{email}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Для персонала ---
	// Список бронирований локации (план зала)
	protected.HandleFunc("/locations/{locationId}/reservations", getLocationReservations.Handle).Methods(http.MethodGet)

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

	// Останавливаем планировщик статусов
	stopScheduler()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
