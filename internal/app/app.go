package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/auth"
	"github.com/gokatarajesh/exam-assembler/internal/auth/jwt"
	"github.com/gokatarajesh/exam-assembler/internal/config"
	"github.com/gokatarajesh/exam-assembler/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/exam-assembler/internal/db/sqlc"
	"github.com/gokatarajesh/exam-assembler/internal/exam"
	"github.com/gokatarajesh/exam-assembler/internal/logging"
	"github.com/gokatarajesh/exam-assembler/internal/metrics"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
	"github.com/gokatarajesh/exam-assembler/internal/server"
)

// Core holds the infrastructure shared by the API and the CLI.
type Core struct {
	Logger    zerolog.Logger
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Exams     *exam.Service
	Inventory exam.Inventory
	Metrics   *metrics.SelectionRecorder
}

// NewCore connects Postgres (and Redis when configured) and builds the exam service.
func NewCore(ctx context.Context, cfg *config.App, logger zerolog.Logger, reg prometheus.Registerer) (*Core, error) {
	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	var (
		redisClient *redis.Client
		cache       exam.ResultCache
	)
	engineOpts := cfg.Selection.EngineOptions()
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		cache = exam.NewCache(redisClient, cfg.Selection.CacheTTL, fmt.Sprintf("%+v", engineOpts))
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("selection cache enabled")
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; selection cache disabled")
	}

	queries := sqlcgen.New(pool)
	questionRepo := repository.NewQuestionRepository(queries)
	examRepo := repository.NewExamRepository(queries, repository.NewPgxTxRunner(pool, queries))

	var recorder *metrics.SelectionRecorder
	opts := exam.ServiceOptions{
		Questions:      questionRepo,
		Exams:          examRepo,
		Engine:         selection.New(engineOpts),
		Cache:          cache,
		MaxTargetMarks: cfg.Selection.MaxTargetMarks,
		Logger:         logger,
	}
	if reg != nil {
		recorder = metrics.NewSelectionRecorder(reg)
		opts.Metrics = recorder
	}

	return &Core{
		Logger:    logger,
		Pool:      pool,
		Redis:     redisClient,
		Exams:     exam.NewService(opts),
		Inventory: questionRepo,
		Metrics:   recorder,
	}, nil
}

// Close releases connections.
func (c *Core) Close() {
	c.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("redis shutdown error")
		}
	}
}

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger
	core   *Core
	http   *http.Server

	inventoryWorker *exam.InventoryWorker
	bgCancels       []context.CancelFunc
}

// New bootstraps configs, logger, Postgres, Redis and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	core, err := NewCore(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	deps := server.Dependencies{
		Pool:  core.Pool,
		Redis: core.Redis,
		Exams: exam.NewHTTPHandler(core.Exams, validate, logger),
	}

	if cfg.Security.JWTSecret != "" {
		if hash := cfg.Security.StaffPasswordHash; hash != "" {
			if err := auth.CheckStaffHash(hash); err != nil {
				core.Close()
				return nil, fmt.Errorf("STAFF_PASSWORD_HASH: %w", err)
			}
		}
		tokens := jwt.NewManager(jwt.TokenConfig{
			Secret:    []byte(cfg.Security.JWTSecret),
			AccessTTL: cfg.Security.AccessTTL,
			Issuer:    cfg.Security.JWTIssuer,
		})
		deps.Tokens = tokens

		authSvc := auth.NewService(auth.ServiceOptions{
			Tokens:            tokens,
			StaffPasswordHash: cfg.Security.StaffPasswordHash,
			AccessTTL:         cfg.Security.AccessTTL,
			Logger:            logger,
		})
		deps.AuthHandlers = auth.NewHTTPHandlers(authSvc, validate, logger)
		if cfg.Security.StaffPasswordHash == "" {
			logger.Warn().Msg("STAFF_PASSWORD_HASH not set; token endpoint will refuse logins")
		}
	} else {
		logger.Warn().Msg("JWT secret not configured; exam assignment API disabled")
	}

	var inventoryWorker *exam.InventoryWorker
	if interval := cfg.Selection.InventoryRefresh; interval > 0 {
		gauge := metrics.NewInventoryRecorder(prometheus.DefaultRegisterer)
		inventoryWorker = exam.NewInventoryWorker(core.Inventory, gauge, interval, logger)
	}

	return &Application{
		cfg:             cfg,
		logger:          logger,
		core:            core,
		http:            server.NewHTTPServer(cfg, logger, deps),
		inventoryWorker: inventoryWorker,
		bgCancels:       make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.stopBackgroundWorkers()
		a.core.Close()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.stopBackgroundWorkers()
	a.core.Close()
	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.inventoryWorker != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.inventoryWorker.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("inventory worker stopped")
			}
		}()
	}
}

func (a *Application) stopBackgroundWorkers() {
	for _, cancel := range a.bgCancels {
		cancel()
	}
}
