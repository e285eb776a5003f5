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

	cancelReservationHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/cancel_reservation"
	createBlockedSlotHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/create_blocked_slot"
	createReservationHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/create_reservation"
	deleteBlockedSlotHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/delete_blocked_slot"
	getAvailableSlotsHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/get_available_slots"
	getBlockedSlotsHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/get_blocked_slots"
	getMaxDurationHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/get_max_duration"
	getReservationHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/get_reservation"
	getRoomReservationsHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/get_room_reservations"
	getUserReservationsHandler "github.com/jadelounge/JL-BookingService/internal/api/handlers/get_user_reservations"
	"github.com/jadelounge/JL-BookingService/internal/api/middleware"
	"github.com/jadelounge/JL-BookingService/internal/config"
	blockedSlotRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/blockedslot"
	reservationRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/reservation"
	notifierClient "github.com/jadelounge/JL-BookingService/internal/integrations/notifier"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	blockedSlotsService "github.com/jadelounge/JL-BookingService/internal/service/blockedslots"
	reservationsService "github.com/jadelounge/JL-BookingService/internal/service/reservations"
	cancelReservationUC "github.com/jadelounge/JL-BookingService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/jadelounge/JL-BookingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/jadelounge/JL-BookingService/internal/usecase/get_available_slots"
	getMaxDurationUC "github.com/jadelounge/JL-BookingService/internal/usecase/get_max_duration"
	"github.com/jadelounge/JL-BookingService/internal/waitlist"
	"github.com/jadelounge/JL-BookingService/pkg/dbmetrics"
	"github.com/jadelounge/JL-BookingService/pkg/logger"
	"github.com/jadelounge/JL-BookingService/pkg/metrics"
	"github.com/jadelounge/JL-BookingService/pkg/simpletxmanager"
	"github.com/jadelounge/JL-BookingService/pkg/txmanager"
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

	log.Info("Starting JL-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона заведения, в ней считаются операционные дни
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	timeProvider := schedule.NewZonedTimeProvider(location)

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

	// Клиент очереди уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		cfg.Notifier.Queue,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notification queue client initialized (queue=%s timeout=%ds)",
		cfg.Notifier.Queue, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		blockedSlotRepository *blockedSlotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Лист ожидания
	waitlistManager := waitlist.NewManager(reservationRepository, log)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		waitlistManager,
		log,
	)
	blockedSlotSvc := blockedSlotsService.NewService(
		blockedSlotRepository,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		blockedSlotRepository,
		waitlistManager,
		txMgr,
		timeProvider,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		waitlistManager,
		notifier,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		blockedSlotRepository,
		timeProvider,
		log,
	)
	getMaxDurationUseCase := getMaxDurationUC.NewUseCase(
		reservationRepository,
		blockedSlotRepository,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMaxDuration := getMaxDurationHandler.NewHandler(getMaxDurationUseCase, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSlotSvc, log)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(blockedSlotSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blockedSlotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов зала на дату
	api.HandleFunc("/rooms/{roomType}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Максимальная длительность бронирования от слота
	api.HandleFunc("/rooms/{roomType}/max-duration", getMaxDuration.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования (или постановка в лист ожидания)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin: true)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.Admin)

	// Бронирования зала на дату
	admin.HandleFunc("/rooms/{roomType}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)

	// Блокировки слотов
	admin.HandleFunc("/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomType}/blocked-slots", getBlockedSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots/{blockId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

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
