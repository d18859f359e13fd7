package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/maxviazov/gym-console/internal/config"
	"github.com/maxviazov/gym-console/internal/handler"
	"github.com/maxviazov/gym-console/internal/logger"
	"github.com/maxviazov/gym-console/internal/middleware"
	"github.com/maxviazov/gym-console/internal/repository/rest"
	"github.com/maxviazov/gym-console/internal/service"
	"github.com/maxviazov/gym-console/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file; empty uses defaults and APP_* env only")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Msg("✅ Logger initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Tracing initialization failed")
	}

	backend, err := rest.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Backend client initialization failed")
	}

	svcs := handler.Services{
		Clients:      service.NewClientService(rest.NewClientRepository(backend), appLogger),
		Trainers:     service.NewTrainerService(rest.NewTrainerRepository(backend), appLogger),
		Classes:      service.NewClassService(rest.NewClassRepository(backend), appLogger),
		Memberships:  service.NewMembershipService(rest.NewMembershipRepository(backend), appLogger),
		Inscriptions: service.NewInscriptionService(rest.NewInscriptionRepository(backend), appLogger),
		Payments:     service.NewPaymentService(rest.NewPaymentRepository(backend), appLogger),
	}

	if cfg.Logger.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(appLogger))

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err := middleware.NewPrometheusMiddleware(reg, cfg.Metrics.Path)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("❌ Metrics registration failed")
		}
		r.Use(metrics.Handler())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	handler.Register(r, backend, svcs, cfg.Console.PageSize, appLogger)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      otelhttp.NewHandler(r, cfg.App.Name),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Str("backend", cfg.Backend.BaseURL).Msg("🚀 Console started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("❌ Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Tracer provider shutdown failed")
	}
	appLogger.Info().Msg("👋 Console stopped")
}
