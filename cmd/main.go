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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyTransitionHandler "github.com/glowdesk/booking-service/internal/api/handlers/apply_transition"
	cancelBookingHandler "github.com/glowdesk/booking-service/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/glowdesk/booking-service/internal/api/handlers/confirm_booking"
	createSessionHandler "github.com/glowdesk/booking-service/internal/api/handlers/create_session"
	getAvailabilityHandler "github.com/glowdesk/booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/glowdesk/booking-service/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/glowdesk/booking-service/internal/api/handlers/get_customer_bookings"
	getProfessionalsHandler "github.com/glowdesk/booking-service/internal/api/handlers/get_professionals"
	getServicesHandler "github.com/glowdesk/booking-service/internal/api/handlers/get_services"
	getSessionHandler "github.com/glowdesk/booking-service/internal/api/handlers/get_session"
	stageSlotHandler "github.com/glowdesk/booking-service/internal/api/handlers/stage_slot"
	toggleServiceHandler "github.com/glowdesk/booking-service/internal/api/handlers/toggle_service"
	"github.com/glowdesk/booking-service/internal/api/middleware"
	"github.com/glowdesk/booking-service/internal/config"
	"github.com/glowdesk/booking-service/internal/infra/catalogcache"
	"github.com/glowdesk/booking-service/internal/infra/sessionstore"
	bookingRepo "github.com/glowdesk/booking-service/internal/infra/storage/booking"
	catalogServiceClient "github.com/glowdesk/booking-service/internal/integrations/catalogservice"
	bookingsService "github.com/glowdesk/booking-service/internal/service/bookings"
	catalogService "github.com/glowdesk/booking-service/internal/service/catalog"
	sessionsService "github.com/glowdesk/booking-service/internal/service/sessions"
	confirmBookingUC "github.com/glowdesk/booking-service/internal/usecase/confirm_booking"
	getAvailabilityUC "github.com/glowdesk/booking-service/internal/usecase/get_availability"
	"github.com/glowdesk/booking-service/pkg/dbmetrics"
	"github.com/glowdesk/booking-service/pkg/logger"
	"github.com/glowdesk/booking-service/pkg/metrics"
	"github.com/glowdesk/booking-service/pkg/simpletxmanager"
	"github.com/glowdesk/booking-service/pkg/txmanager"
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

	log.Info("Starting salon booking service...")
	log.Info("Configuration loaded from config.toml")

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

	// Клиент каталога, при включенном Redis оборачивается read-through кешем
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	var catalog interface {
		ListServices(ctx context.Context) ([]catalogServiceClient.Service, error)
		GetService(ctx context.Context, serviceID int64) (*catalogServiceClient.Service, error)
		ListProfessionals(ctx context.Context) ([]catalogServiceClient.Professional, error)
		GetProfessional(ctx context.Context, professionalID int64) (*catalogServiceClient.Professional, error)
	} = catalogClient

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer rdb.Close()

		catalog = catalogcache.New(
			catalogClient,
			rdb,
			time.Duration(cfg.Redis.CatalogTTLSec)*time.Second,
			log,
		)
		log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CatalogTTLSec)
	}

	// Инициализируем репозиторий бронирований (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	var txMgr confirmBookingUC.TransactionManager
	var readTxMgr getAvailabilityUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		manager := txmanager.NewTransactionManager(wrappedDB)
		txMgr, readTxMgr = manager, manager
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		manager := simpletxmanager.NewTransactionManager(db)
		txMgr, readTxMgr = manager, manager
	}

	// Хранилище сессий бронирования живет в памяти процесса
	sessionStore := sessionstore.NewMemory()
	stopJanitorCh := make(chan struct{})
	sessionStore.StartJanitor(
		time.Duration(cfg.Sessions.SweepIntervalMinutes)*time.Minute,
		time.Duration(cfg.Sessions.MaxIdleMinutes)*time.Minute,
		stopJanitorCh,
	)
	log.Info("Session store initialized (max idle=%dm, sweep every %dm)",
		cfg.Sessions.MaxIdleMinutes, cfg.Sessions.SweepIntervalMinutes)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalog, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	sessionSvc := sessionsService.NewService(sessionStore, catalog, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.New(
		sessionStore,
		bookingRepository,
		readTxMgr,
		catalog,
		getAvailabilityUC.Schedule{
			OpenTime:        cfg.OpenTimeString(),
			CloseTime:       cfg.CloseTimeString(),
			SlotStepMinutes: cfg.Schedule.SlotStepMinutes,
		},
		&getAvailabilityUC.RealTimeProvider{},
		log,
	)

	var confirmMetrics confirmBookingUC.Metrics = confirmBookingUC.NopMetrics{}
	if cfg.Metrics.Enabled {
		confirmMetrics = metricsCollector
	}
	confirmBookingUseCase := confirmBookingUC.New(
		sessionStore,
		bookingRepository,
		txMgr,
		confirmBookingUC.Schedule{
			OpenTime:  cfg.OpenTimeString(),
			CloseTime: cfg.CloseTimeString(),
		},
		&confirmBookingUC.RealTimeProvider{},
		confirmMetrics,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getProfessionals := getProfessionalsHandler.NewHandler(catalogSvc, log)
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	toggleService := toggleServiceHandler.NewHandler(sessionSvc, log)
	applyTransition := applyTransitionHandler.NewHandler(sessionSvc, log)
	stageSlot := stageSlotHandler.NewHandler(sessionSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, &getAvailabilityUC.RealTimeProvider{}, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и мастеров
	api.HandleFunc("/catalog/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/professionals", getProfessionals.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-Name header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии бронирования ---
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/services/toggle", toggleService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/transitions", applyTransition.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/slot", stageSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые горутины
	close(stopJanitorCh)
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
