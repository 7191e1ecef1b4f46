package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "fundledger/internal/adapter/http"
	"fundledger/internal/adapter/memory"
	"fundledger/internal/adapter/postgres"
	"fundledger/internal/adapter/usecase"
	"fundledger/internal/config"
	"fundledger/internal/core/port"
	"fundledger/internal/db"
	"fundledger/internal/event"
)

// main is the entry point of the ledger service. It loads configuration,
// optionally runs database migrations, wires the selected storage
// backend, the notification bus and the HTTP server, then blocks until a
// termination signal triggers a graceful shutdown.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.LedgerRepository
	switch cfg.Storage {
	case "memory":
		logger.Info("using in-memory ledger storage")
		repo = memory.NewLedgerRepository()
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		if cfg.Psql.SeedDemo {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("demo data seeded")
		}
		repo = postgres.NewLedgerRepository(pool)
	}

	bus := event.NewBus(prometheus.DefaultRegisterer, logger)
	defer bus.Stop()
	subscribeEventLog(bus, logger)

	svc := usecase.NewLedgerUseCase(repo, bus, nil)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// subscribeEventLog attaches a structured-logging consumer to every live
// notification type. FundsReleased has no producer and is deliberately
// not subscribed.
func subscribeEventLog(bus *event.Bus, logger *slog.Logger) {
	bus.SubscribeFunc(event.TypeCampaignCreated, func(evt event.Event) {
		if data, ok := evt.Data.(event.CampaignCreated); ok {
			logger.Info("campaign created",
				slog.Int64("campaign_id", data.CampaignID),
				slog.String("name", data.Name),
				slog.Int64("target_amount", data.TargetAmount),
				slog.Time("deadline", data.Deadline))
		}
	})
	bus.SubscribeFunc(event.TypeContributionMade, func(evt event.Event) {
		if data, ok := evt.Data.(event.ContributionMade); ok {
			logger.Info("contribution made",
				slog.Int64("campaign_id", data.CampaignID),
				slog.String("contributor", data.Contributor),
				slog.Int64("amount", data.Amount))
		}
	})
	bus.SubscribeFunc(event.TypeCampaignFinalized, func(evt event.Event) {
		if data, ok := evt.Data.(event.CampaignFinalized); ok {
			logger.Info("campaign finalized",
				slog.Int64("campaign_id", data.CampaignID),
				slog.String("status", string(data.Status)))
		}
	})
}
