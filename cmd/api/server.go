package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/records-api/internal/config"
	clientHandler "github.com/jwalitptl/records-api/internal/handler/client"
	"github.com/jwalitptl/records-api/internal/handler/health"
	patientHandler "github.com/jwalitptl/records-api/internal/handler/patient"
	prescriptionHandler "github.com/jwalitptl/records-api/internal/handler/prescription"
	promHandler "github.com/jwalitptl/records-api/internal/handler/prometheus"
	tripHandler "github.com/jwalitptl/records-api/internal/handler/trip"
	"github.com/jwalitptl/records-api/internal/repository/postgres"
	"github.com/jwalitptl/records-api/internal/router"
	clientService "github.com/jwalitptl/records-api/internal/service/client"
	patientService "github.com/jwalitptl/records-api/internal/service/patient"
	prescriptionService "github.com/jwalitptl/records-api/internal/service/prescription"
	tripService "github.com/jwalitptl/records-api/internal/service/trip"
	"github.com/jwalitptl/records-api/pkg/logger"
	"github.com/jwalitptl/records-api/pkg/messaging"
	"github.com/jwalitptl/records-api/pkg/messaging/redis"
	"github.com/jwalitptl/records-api/pkg/metrics"
	"github.com/jwalitptl/records-api/pkg/validator"
)

const metricsNamespace = "records"

func loadConfig(configPath, service string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if service != "" {
		cfg.Server.Service = service
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg, nil
}

func runServer(ctx context.Context, configPath, service string) error {
	cfg, err := loadConfig(configPath, service)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(metricsNamespace)
	if err := m.Register(registry); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Initialize database
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	store := postgres.NewStore(db, m)
	if cfg.Database.SeedOnStart {
		if err := seed(ctx, store); err != nil {
			return err
		}
	}

	publisher, closePublisher := newPublisher(ctx, cfg.Redis, m)
	defer closePublisher()

	// Initialize services
	repos := store.Repositories()
	tripSvc := tripService.NewService(repos.Trips)
	clientSvc := clientService.NewService(repos, store, publisher,
		clientService.WithStrictCapacity(cfg.Registration.StrictCapacity))
	patientSvc := patientService.NewService(repos.Patients)
	prescriptionSvc := prescriptionService.NewService(repos, store, validator.New(), publisher)

	// Setup router
	r := router.NewRouter(router.RouterConfig{
		Server:    cfg.Server,
		RateLimit: cfg.RateLimit,
	}, router.Handlers{
		Trips:         tripHandler.NewHandler(tripSvc),
		Clients:       clientHandler.NewHandler(clientSvc),
		Patients:      patientHandler.NewHandler(patientSvc),
		Prescriptions: prescriptionHandler.NewHandler(prescriptionSvc),
		Health:        health.NewHandler(db),
		Metrics:       promHandler.New(registry, m),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Int("port", cfg.Server.Port).
			Str("service", cfg.Server.Service).
			Str("driver", cfg.Database.Driver).
			Bool("strict_capacity", cfg.Registration.StrictCapacity).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath, "")
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return seed(ctx, postgres.NewStore(db, nil))
}

func seed(ctx context.Context, store *postgres.Store) error {
	res, err := store.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	log.Info().
		Int64("doctors", res.DoctorsInserted).
		Int64("medicaments", res.MedicamentsInserted).
		Msg("catalog seeded")
	return nil
}

// newPublisher connects the Redis broker when a URL is configured. Without
// one, or when Redis is unreachable at startup, events are dropped.
func newPublisher(ctx context.Context, cfg config.RedisConfig, m *metrics.Metrics) (messaging.Publisher, func()) {
	if cfg.URL == "" {
		return messaging.NopPublisher{}, func() {}
	}

	broker, err := redis.NewRedisBroker(ctx, redis.Config{
		URL:          cfg.URL,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}, log.Logger, m)
	if err != nil {
		log.Warn().Err(err).Msg("event publishing disabled")
		return messaging.NopPublisher{}, func() {}
	}

	return messaging.NewBrokerPublisher(broker), func() {
		if err := broker.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close broker")
		}
	}
}
