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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-BarberService/internal/api"
	createAdminHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_admin"
	createReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_reservation"
	deleteAdminHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_admin"
	deleteReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_reservation"
	getAdminsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_admins"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_reservations"
	loginHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/login"
	resetAdminPasswordHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/reset_admin_password"
	updateAdminHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_admin"
	updateReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-BarberService/internal/config"
	adminRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberService/internal/infra/storage/migrations"
	reservationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarberService/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarberService/internal/integrations/recaptcha"
	adminsService "github.com/m04kA/SMC-BarberService/internal/service/admins"
	authService "github.com/m04kA/SMC-BarberService/internal/service/auth"
	reservationsService "github.com/m04kA/SMC-BarberService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	loginUC "github.com/m04kA/SMC-BarberService/internal/usecase/login"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
)

// envConfigPath переменная окружения с путем к конфигу
const envConfigPath = "BARBER_CONFIG"

func main() {
	configPath := os.Getenv(envConfigPath)
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

	log.Info("Starting barber-api...")
	log.Info("Configuration loaded from %s", configPath)

	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Invalid schedule timezone %q: %v", cfg.Schedule.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	dialect := cfg.Dialect()
	db, err := sql.Open(cfg.Database.DriverName(), cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	if dialect == psqlbuilder.DialectSQLite {
		// SQLite допускает одного писателя
		db.SetMaxOpenConns(1)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	if dialect == psqlbuilder.DialectSQLite {
		log.Info("Successfully connected to database (sqlite, path=%s)", cfg.Database.Path)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	sb := psqlbuilder.MustNew(dialect)

	// Создаем схему
	if err := migrations.Apply(context.Background(), wrappedDB, dialect); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database schema is up to date")

	var txOpts []txmanager.Option
	if dialect == psqlbuilder.DialectSQLite {
		txOpts = append(txOpts, txmanager.WithSerializableLevel(sql.LevelDefault))
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB, txOpts...)

	// Инициализируем интеграционных клиентов
	captchaClient := recaptcha.NewClient(
		cfg.Recaptcha.Enabled,
		cfg.Recaptcha.VerifyURL,
		cfg.Recaptcha.Secret,
		cfg.Recaptcha.MinScore,
		time.Duration(cfg.Recaptcha.Timeout)*time.Second,
		log,
	)

	var notifier createReservationUC.Notifier = mailer.Nop{}
	if cfg.Email.Enabled {
		notifier = mailer.NewSMTPSender(
			cfg.Email.Host,
			cfg.Email.Port,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
			time.Duration(cfg.Email.Timeout)*time.Second,
		)
	}
	log.Info("Integration clients initialized (recaptcha=%t, email=%t)", cfg.Recaptcha.Enabled, cfg.Email.Enabled)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB, sb)
	adminRepository := adminRepo.NewRepository(wrappedDB, sb)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.Issuer,
	)
	reservationSvc := reservationsService.NewService(reservationRepository, schedule, log)
	adminSvc := adminsService.NewService(adminRepository, authSvc, txMgr, log)

	// Первый администратор
	created, err := adminSvc.EnsureBootstrapAdmin(context.Background(), cfg.Bootstrap.Username, cfg.Bootstrap.Password)
	if err != nil {
		log.Fatal("Failed to create bootstrap admin: %v", err)
	}
	if created {
		log.Info("Bootstrap admin %q created", cfg.Bootstrap.Username)
	}

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		captchaClient,
		notifier,
		txMgr,
		metricsCollector,
		schedule,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		schedule,
		location,
		log,
	)
	loginUseCase := loginUC.NewUseCase(
		adminRepository,
		authSvc,
		captchaClient,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	handlers := api.Handlers{
		Login:              loginHandler.NewHandler(loginUseCase, log),
		CreateReservation:  createReservationHandler.NewHandler(createReservationUseCase, log),
		GetAvailableSlots:  getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		GetReservations:    getReservationsHandler.NewHandler(reservationSvc, log),
		GetReservation:     getReservationHandler.NewHandler(reservationSvc, log),
		UpdateReservation:  updateReservationHandler.NewHandler(reservationSvc, log),
		DeleteReservation:  deleteReservationHandler.NewHandler(reservationSvc, log),
		GetAdmins:          getAdminsHandler.NewHandler(adminSvc, log),
		CreateAdmin:        createAdminHandler.NewHandler(adminSvc, log),
		UpdateAdmin:        updateAdminHandler.NewHandler(adminSvc, log),
		DeleteAdmin:        deleteAdminHandler.NewHandler(adminSvc, log),
		ResetAdminPassword: resetAdminPasswordHandler.NewHandler(adminSvc, log),
	}

	// Настраиваем роутер
	opts := api.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DB:             wrappedDB,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimitPerMinute = cfg.RateLimit.RequestsPerMinute
	}
	router := api.NewRouter(handlers, authSvc, adminRepository, opts, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
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
