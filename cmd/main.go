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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getBusinessSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_business_slots"
	getCollaboratorAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_collaborator_appointments"
	getCollaboratorScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_collaborator_schedule"
	getCollaboratorSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_collaborator_slots"
	getOperatingHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_operating_hours"
	updateCollaboratorScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_collaborator_schedule"
	updateOperatingHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_operating_hours"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	scheduleCache "github.com/m04kA/SMC-SalonService/internal/infra/cache/schedule"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
	hoursRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hours"
	clientServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/clientservice"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
	checkAvailabilityUC "github.com/m04kA/SMC-SalonService/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	getBusinessSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_business_slots"
	getCollaboratorSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_collaborator_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from %s", configPath)

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	hoursRepository := hoursRepo.NewRepository(wrappedDB)
	collaboratorRepository := collaboratorRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)

	// Кэш расписаний (nil клиент = кэш выключен)
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed, cache will fall back to database: %v", err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cancelPing()
	}

	var cacheMetrics scheduleCache.MetricsRecorder
	if metricsCollector != nil {
		cacheMetrics = metricsCollector
	}

	schedules := scheduleCache.NewCache(
		redisClient,
		time.Duration(cfg.Redis.TTL)*time.Second,
		hoursRepository,
		collaboratorRepository,
		cacheMetrics,
		log,
	)

	// Интеграции
	clientCatalog := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("ClientService client initialized (url=%s, timeout=%ds)", cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Сервисы
	scheduleSvc := scheduleService.NewService(hoursRepository, collaboratorRepository, schedules, txMgr, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, collaboratorRepository, hoursRepository, txMgr, log)

	// Use cases
	getBusinessSlotsUseCase := getBusinessSlotsUC.NewUseCase(
		schedules,
		hoursRepository,
		getBusinessSlotsUC.Config{
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
			MinNoticeMinutes:   cfg.Booking.MinNoticeMinutes,
		},
		log,
	)
	getCollaboratorSlotsUseCase := getCollaboratorSlotsUC.NewUseCase(
		collaboratorRepository,
		schedules,
		appointmentRepository,
		getCollaboratorSlotsUC.Config{
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
			MinNoticeMinutes:   cfg.Booking.MinNoticeMinutes,
		},
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(collaboratorRepository, schedules, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		collaboratorRepository,
		clientCatalog,
		txMgr,
		createAppointmentUC.Config{
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
			MinNoticeMinutes:   cfg.Booking.MinNoticeMinutes,
		},
		log,
	)

	// Handlers
	getBusinessSlots := getBusinessSlotsHandler.NewHandler(getBusinessSlotsUseCase, log)
	getCollaboratorSlots := getCollaboratorSlotsHandler.NewHandler(getCollaboratorSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getOperatingHours := getOperatingHoursHandler.NewHandler(scheduleSvc, log)
	updateOperatingHours := updateOperatingHoursHandler.NewHandler(scheduleSvc, log)
	getCollaboratorSchedule := getCollaboratorScheduleHandler.NewHandler(scheduleSvc, log)
	updateCollaboratorSchedule := updateCollaboratorScheduleHandler.NewHandler(scheduleSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getCollaboratorAppointments := getCollaboratorAppointmentsHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободное время
	api.HandleFunc("/businesses/{businessId}/available-slots", getBusinessSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/collaborators/{collaboratorId}/available-slots", getCollaboratorSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/collaborators/{collaboratorId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расписания
	api.HandleFunc("/businesses/{businessId}/operating-hours", getOperatingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/collaborators/{collaboratorId}/schedule", getCollaboratorSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Управление салоном (для владельца) ---
	protected.HandleFunc("/collaborators/{collaboratorId}/appointments", getCollaboratorAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/operating-hours", updateOperatingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/collaborators/{collaboratorId}/schedule", updateCollaboratorSchedule.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
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
