package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/infrastructure/config"
	"github.com/dentara/dentara/internal/infrastructure/kafka"
	pgRepo "github.com/dentara/dentara/internal/infrastructure/persistence/postgres"
	"github.com/dentara/dentara/internal/infrastructure/scheduler"
	"github.com/dentara/dentara/internal/presentation/rest"
	"github.com/dentara/dentara/pkg/auth"
	"github.com/dentara/dentara/pkg/observability"
	pgutil "github.com/dentara/dentara/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting dentarad", "http_port", cfg.HTTPPort)

	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(ctx) }()
	}

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics", "error", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pgutil.NewPool(dbCtx, pgutil.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pgutil.RunMigrations(cfg.DB.DSN(), cfg.MigrationsPath); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure.
	receivableRepo := pgRepo.NewReceivableRepository(pool)
	payableRepo := pgRepo.NewPayableRepository(pool)
	transactionRepo := pgRepo.NewTransactionRepository(pool)
	contractRepo := pgRepo.NewOrthoContractRepository(pool)
	patientRepo := pgRepo.NewPatientRepository(pool)
	anamnesisRepo := pgRepo.NewAnamnesisRepository(pool)
	professionalRepo := pgRepo.NewProfessionalRepository(pool)
	appointmentRepo := pgRepo.NewAppointmentRepository(pool)
	waitlistRepo := pgRepo.NewWaitlistRepository(pool)
	budgetRepo := pgRepo.NewBudgetRepository(pool)
	categoryRepo := pgRepo.NewCategoryRepository(pool)
	costCenterRepo := pgRepo.NewCostCenterRepository(pool)

	publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer publisher.Close()

	// Use cases.
	createPlanUC := usecase.NewCreateInstallmentPlanUseCase(receivableRepo, publisher, logger)
	settleUC := usecase.NewSettleReceivableUseCase(receivableRepo, publisher, logger)
	renegotiateUC := usecase.NewRenegotiatePlanUseCase(receivableRepo, publisher, logger)
	createRecvUC := usecase.NewCreateReceivableUseCase(receivableRepo)
	createTxUC := usecase.NewCreateTransactionUseCase(transactionRepo, receivableRepo, publisher, logger)
	payablesUC := usecase.NewPayableUseCase(payableRepo, publisher, logger)
	createContractUC := usecase.NewCreateOrthoContractUseCase(contractRepo, publisher, logger)
	cancelContractUC := usecase.NewCancelOrthoContractUseCase(contractRepo, publisher, logger)
	queriesUC := usecase.NewFinancialQueryUseCase(receivableRepo, transactionRepo, contractRepo)
	ledgerUC := usecase.NewLedgerUseCase(categoryRepo, costCenterRepo)
	markOverdueUC := usecase.NewMarkOverdueUseCase(receivableRepo, payableRepo, publisher, logger)

	patientsUC := usecase.NewPatientUseCase(patientRepo, publisher, logger)
	anamnesisUC := usecase.NewAnamnesisUseCase(anamnesisRepo)
	professionalsUC := usecase.NewProfessionalUseCase(professionalRepo)
	appointmentsUC := usecase.NewAppointmentUseCase(appointmentRepo)
	waitlistUC := usecase.NewWaitlistUseCase(waitlistRepo)
	moveWaitlistUC := usecase.NewMoveWaitlistEntryUseCase(waitlistRepo, publisher, logger)
	budgetsUC := usecase.NewBudgetUseCase(budgetRepo, publisher, logger)

	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Nightly overdue sweep.
	sched := scheduler.New(markOverdueUC, logger)
	if err := sched.Start(cfg.OverdueCron); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	router := &rest.Router{
		Health: rest.NewHealthHandler(pool),
		Financial: rest.NewFinancialHandler(
			createPlanUC, settleUC, renegotiateUC, createRecvUC, createTxUC,
			payablesUC, createContractUC, cancelContractUC, queriesUC, ledgerUC,
			logger,
		),
		Clinic: rest.NewClinicHandler(
			patientsUC, anamnesisUC, professionalsUC, appointmentsUC,
			waitlistUC, moveWaitlistUC, budgetsUC,
			logger,
		),
		JWT: jwtSvc,
		RateLimit: rest.NewRateLimiter(
			time.Duration(cfg.RateLimit.Window)*time.Second,
			cfg.RateLimit.MaxPerWin,
		),
		Metrics: metricsHandler,
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           rest.RequestLogger(logger)(router.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("dentarad stopped")
}
