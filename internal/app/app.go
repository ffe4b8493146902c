package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/riskframe/secreview-backend/internal/adapter/postgres"
	auditrepo "github.com/riskframe/secreview-backend/internal/adapter/postgres/audit"
	learningrepo "github.com/riskframe/secreview-backend/internal/adapter/postgres/learning"
	productionrepo "github.com/riskframe/secreview-backend/internal/adapter/postgres/production"
	submissionrepo "github.com/riskframe/secreview-backend/internal/adapter/postgres/submission"
	taxonomyrepo "github.com/riskframe/secreview-backend/internal/adapter/postgres/taxonomy"
	"github.com/riskframe/secreview-backend/internal/config"
	"github.com/riskframe/secreview-backend/internal/service/review"
	"github.com/riskframe/secreview-backend/internal/transport/middleware"
	"github.com/riskframe/secreview-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the review service and HTTP transport, and serves
// until the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	reviewSvc := review.NewService(
		logger,
		txm,
		submissionrepo.New(pool),
		taxonomyrepo.New(pool),
		productionrepo.New(pool),
		auditrepo.New(pool),
		learningrepo.New(pool),
		cfg.Review,
	)

	reviewHandler := rest.NewReviewHandler(reviewSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := rest.NewRouter(reviewHandler, healthHandler)
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
