package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger, pool, err := setup(ctx)
	if err != nil {
		slog.Error("startup failed", "error", err)
		return err
	}
	defer pool.Close()

	if migrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			logger.Error("migration failed", "error", err)
			return err
		}
	}

	// --- Idempotency store ------------------------------------------------
	// Optional: without REDIS_ADDR, Idempotency-Key headers are ignored.
	var store middleware.IdempotencyStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to ping redis", "error", err)
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		store = middleware.NewRedisIdempotencyStore(client)
		logger.Info("idempotency store enabled", "redis_addr", cfg.RedisAddr)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, logger, newAPIServer(pool, logger), prometheus.DefaultRegisterer, store),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return listenAndServe(srv, logger)
}

// newAPIServer wires repos and services into the handler Server.
func newAPIServer(pool *pgxpool.Pool, logger *slog.Logger) *handler.Server {
	trips := repo.NewTripRepo(pool)
	activities := repo.NewActivityRepo(pool)
	items := repo.NewPackingItemRepo(pool)

	return handler.NewServer(
		service.NewTripService(trips, activities, items, time.Now),
		service.NewActivityService(trips, activities),
		service.NewPackingItemService(trips, items),
		logger,
	)
}

// newRouter assembles the middleware stack around the API routes.
//
// Global order: RequestID → RealIP → SlogLogger → Recoverer → Metrics → CORS → MaxBodySize.
// The /trips routes add identity and, when store is non-nil, idempotency.
// /healthz, /openapi.yaml and /metrics need no identity.
func newRouter(cfg config.Config, logger *slog.Logger, api *handler.Server, reg prometheus.Registerer, store middleware.IdempotencyStore) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins, cfg.UserHeader))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	if g, ok := reg.(prometheus.Gatherer); ok {
		r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	} else {
		r.Handle("/metrics", promhttp.Handler())
	}

	apiMiddlewares := []handler.MiddlewareFunc{middleware.NewUserIdentity(cfg.UserHeader)}
	if store != nil {
		apiMiddlewares = append(apiMiddlewares, middleware.NewIdempotency(store, logger))
	}
	handler.HandlerWithOptions(api, handler.ChiServerOptions{
		BaseRouter:  r,
		Middlewares: apiMiddlewares,
	})
	return r
}

// listenAndServe runs srv until SIGINT or SIGTERM, then gives in-flight
// requests up to 15 seconds to complete.
func listenAndServe(srv *http.Server, logger *slog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		logger.Error("server error", "error", err)
		return err
	case <-stop:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
