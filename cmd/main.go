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

	cancelBookingHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/get_catalog"
	getClientBookingsHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/get_client_bookings"
	quotePriceHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/quote_price"
	validateDiscountHandler "github.com/m04kA/WVG-BookingService/internal/api/handlers/validate_discount"
	"github.com/m04kA/WVG-BookingService/internal/api/middleware"
	"github.com/m04kA/WVG-BookingService/internal/config"
	"github.com/m04kA/WVG-BookingService/internal/infra/migrations"
	bookingRepo "github.com/m04kA/WVG-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/WVG-BookingService/internal/infra/storage/catalog"
	discountRepo "github.com/m04kA/WVG-BookingService/internal/infra/storage/discount"
	clientServiceClient "github.com/m04kA/WVG-BookingService/internal/integrations/clientservice"
	bookingsService "github.com/m04kA/WVG-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/WVG-BookingService/internal/service/catalog"
	discountsService "github.com/m04kA/WVG-BookingService/internal/service/discounts"
	createBookingUC "github.com/m04kA/WVG-BookingService/internal/usecase/create_booking"
	quotePriceUC "github.com/m04kA/WVG-BookingService/internal/usecase/quote_price"
	"github.com/m04kA/WVG-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WVG-BookingService/pkg/logger"
	"github.com/m04kA/WVG-BookingService/pkg/metrics"
	"github.com/m04kA/WVG-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/WVG-BookingService/pkg/txmanager"
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

	log.Info("Starting WVG-BookingService...")
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

	// Применяем миграции (если включены)
	if cfg.Database.RunMigrations {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем интеграционного клиента CRM
	clientSvcClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		cfg.ClientService.MaxRetries,
		log,
	)
	log.Info("Integration client initialized (ClientService=%s timeout=%ds retries=%d)",
		cfg.ClientService.URL, cfg.ClientService.Timeout, cfg.ClientService.MaxRetries)

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository  *catalogRepo.Repository
		discountRepository *discountRepo.Repository
		bookingRepository  *bookingRepo.Repository
		txMgr              createBookingUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		discountRepository = discountRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		discountRepository = discountRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	discountsSvc := discountsService.NewService(discountRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(
		catalogRepository,
		discountsSvc,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		discountsSvc,
		discountRepository,
		clientSvcClient,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	validateDiscount := validateDiscountHandler.NewHandler(discountsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Полный каталог: категории, пакеты, дополнения
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Расчет цены по текущему выбору калькулятора
	api.HandleFunc("/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Проверка промокода
	api.HandleFunc("/discounts/validate", validateDiscount.Handle).Methods(http.MethodPost)

	// Оформление заявки на съемку (идентификатор клиента выдается в ответе)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

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
