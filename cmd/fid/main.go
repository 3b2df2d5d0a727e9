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

	"github.com/ltorres832/AutoDealers-sub014/internal/application/usecase"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/service"
	"github.com/ltorres832/AutoDealers-sub014/internal/infrastructure/adapter"
	"github.com/ltorres832/AutoDealers-sub014/internal/infrastructure/config"
	"github.com/ltorres832/AutoDealers-sub014/internal/infrastructure/kafka"
	pgRepo "github.com/ltorres832/AutoDealers-sub014/internal/infrastructure/postgres"
	grpcPresentation "github.com/ltorres832/AutoDealers-sub014/internal/presentation/grpc"
	"github.com/ltorres832/AutoDealers-sub014/internal/presentation/rest"
	"github.com/ltorres832/AutoDealers-sub014/pkg/auth"
	pkgkafka "github.com/ltorres832/AutoDealers-sub014/pkg/kafka"
	"github.com/ltorres832/AutoDealers-sub014/pkg/observability"
	pkgpostgres "github.com/ltorres832/AutoDealers-sub014/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Observability.LogLevel,
		Format:  cfg.Observability.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting fi-request-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Observability.OTLPEndpoint,
		Environment: cfg.Observability.Environment,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort meter shutdown

	// Database.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure adapters.
	requestRepo := pgRepo.NewRequestRepo(pool)
	ruleRepo := pgRepo.NewWorkflowRuleRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.EventTopic, logger)
	notifier := kafka.NewNotifier(kafkaProducer, cfg.Kafka.NotificationTopic)
	validator := adapter.NewStubDocumentValidator()
	clock := adapter.NewSystemClock()

	// Domain services.
	scorer := service.NewApprovalScorer(service.DefaultScoringWeights())
	combiner := service.NewCosignerCombiner()
	ruleEngine := service.NewRuleEngine()

	// Use cases.
	sink := usecase.NewEventSink(publisher, logger)
	dispatcher := usecase.NewActionDispatcher(requestRepo, notifier, clock, logger)
	createUC := usecase.NewCreateRequestUseCase(requestRepo, sink, clock)
	transitionUC := usecase.NewTransitionRequestUseCase(
		requestRepo, ruleRepo, sink, scorer, combiner, ruleEngine, dispatcher, clock, logger)
	submitUC := usecase.NewSubmitRequestUseCase(transitionUC)
	financingUC := usecase.NewCalculateFinancingUseCase(requestRepo, sink, scorer, combiner, clock)
	addCosignerUC := usecase.NewAddCosignerUseCase(requestRepo, sink, combiner, clock)
	requestDocUC := usecase.NewRequestDocumentUseCase(requestRepo, sink, clock)
	submitDocUC := usecase.NewSubmitDocumentUseCase(requestRepo, sink, validator, clock, logger)
	recordValidationUC := usecase.NewRecordValidationUseCase(requestRepo, sink, clock)
	updateNotesUC := usecase.NewUpdateNotesUseCase(requestRepo, sink, clock)
	getUC := usecase.NewGetRequestUseCase(requestRepo)
	getHistoryUC := usecase.NewGetHistoryUseCase(requestRepo)
	listUC := usecase.NewListRequestsUseCase(requestRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{Issuer: cfg.Auth.Issuer}
	if cfg.Auth.PublicKeyFile != "" {
		keyData, loadErr := auth.LoadKeyFromFile(cfg.Auth.PublicKeyFile)
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtCfg.Secret = cfg.Auth.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewFIRequestHandler(
		createUC, submitUC, transitionUC, financingUC, addCosignerUC,
		requestDocUC, submitDocUC, recordValidationUC, updateNotesUC,
		getUC, getHistoryUC, listUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks + metrics).
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

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

	grpcServer.GracefulStop()
	dispatcher.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("fi-request-service stopped")
}
