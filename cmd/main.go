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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/get_booking"
	getGroundBookingsHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/get_ground_bookings"
	getGroundHoursHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/get_ground_hours"
	getUserBookingsHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-GroundBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-GroundBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroundBookingService/internal/config"
	"github.com/m04kA/SMC-GroundBookingService/internal/infra/kvstore"
	blockedSlotRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/blockedslot"
	bookingRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/booking"
	groundRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/ground"
	"github.com/m04kA/SMC-GroundBookingService/internal/integrations/bookingevents"
	bookingsService "github.com/m04kA/SMC-GroundBookingService/internal/service/bookings"
	groundsService "github.com/m04kA/SMC-GroundBookingService/internal/service/grounds"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/slotcache"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/slotlock"
	"github.com/m04kA/SMC-GroundBookingService/internal/slots"
	createBookingUC "github.com/m04kA/SMC-GroundBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-GroundBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-GroundBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroundBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroundBookingService/pkg/metrics"
	"github.com/m04kA/SMC-GroundBookingService/pkg/txmanager"
)

// eventPublisher публикатор событий бронирований: Kafka или заглушка
type eventPublisher interface {
	createBookingUC.EventPublisher
	bookingsService.EventPublisher
	Close() error
}

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

	log.Info("Starting SMC-GroundBookingService...")

	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	// Метрики (nil-коллектор безопасен, все методы его проверяют)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set migrations dialect: %v", err)
		}
		if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
			log.Fatal("Failed to apply migrations from %s: %v", cfg.Database.MigrationsDir, err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsDir)
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	groundRepository := groundRepo.NewRepository(wrappedDB)
	blockedSlotRepository := blockedSlotRepo.NewRepository(wrappedDB)

	// Хранилище блокировок и кэша: Redis с откатом в память
	memoryStore := kvstore.NewMemoryStore(cfg.Booking.StoreSweepInterval())
	defer memoryStore.Stop()

	var (
		store       kvstore.Store = memoryStore
		redisClient *redis.Client
	)

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		redisStore := kvstore.NewRedisStore(redisClient, cfg.Redis.OpTimeout())
		fallback := kvstore.NewFallbackStore(redisStore, memoryStore, cfg.Redis.FallbackCooldown(), log, metricsCollector)

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisStore.Ping(pingCtx); err != nil {
			log.Warn("Redis %s unavailable at startup, using in-memory store: %v", cfg.Redis.Addr, err)
			fallback.StartDegraded(err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cancelPing()

		store = fallback
	} else {
		log.Info("Redis disabled, using in-memory store")
	}

	slotCache := slotcache.New(store, cfg.Booking.SlotsCacheTTL(), log, metricsCollector)
	slotLocker := slotlock.New(store, cfg.Booking.SlotLockTTL(), log, metricsCollector)
	engine := slots.NewEngine(cfg.Booking.GranularityMinutes)

	// События бронирований
	var events eventPublisher = bookingevents.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher, err := bookingevents.NewPublisher(bookingevents.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: time.Duration(cfg.Kafka.WriteTimeoutSec) * time.Second,
		}, log)
		if err != nil {
			log.Fatal("Failed to create booking events publisher: %v", err)
		}
		events = publisher
		log.Info("Booking events enabled (topic=%s, brokers=%v)", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error("Failed to close booking events publisher: %v", err)
		}
	}()

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		groundRepository,
		bookingRepository,
		blockedSlotRepository,
		slotCache,
		engine,
		location,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		groundRepository,
		getAvailableSlotsUseCase,
		slotLocker,
		txMgr,
		events,
		metricsCollector,
		cfg.Booking.GranularityMinutes,
		log,
	)

	// Сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		groundRepository,
		events,
		bookingsService.RefundPolicy{
			Window:  cfg.Booking.RefundWindow(),
			Percent: cfg.Booking.RefundPercent,
		},
		location,
		log,
	)
	groundSvc := groundsService.NewService(groundRepository, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getGroundBookings := getGroundBookingsHandler.NewHandler(bookingSvc, log)
	getGroundHours := getGroundHoursHandler.NewHandler(groundSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/grounds/{groundId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/grounds/{groundId}/operating-hours", getGroundHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Для персонала площадки
	protected.HandleFunc("/grounds/{groundId}/bookings", getGroundBookings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
