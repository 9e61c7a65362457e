package server

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/auth"
	"github.com/gokatarajesh/exam-assembler/internal/config"
	"github.com/gokatarajesh/exam-assembler/internal/exam"
	"github.com/gokatarajesh/exam-assembler/internal/logging"
	httperrors "github.com/gokatarajesh/exam-assembler/pkg/http/errors"
)

// Dependencies groups what the router needs. Nil Redis, AuthHandlers or
// Tokens disable the corresponding features.
type Dependencies struct {
	Pool         *pgxpool.Pool
	Redis        *redis.Client
	AuthHandlers *auth.HTTPHandlers
	Tokens       auth.TokenValidator
	Exams        *exam.HTTPHandler
}

// NewHTTPServer wires base routes (health, metrics) and the exam API.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Dependencies) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(logger, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter builds the request multiplexer.
func NewRouter(logger zerolog.Logger, deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), deps.Pool, deps.Redis); err != nil {
			logging.FromContext(r.Context()).Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeServiceUnavailable, "upstream error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if deps.AuthHandlers != nil {
		mux.HandleFunc("/v1/auth/token", deps.AuthHandlers.Token)
	}

	if deps.Exams != nil {
		mux.HandleFunc("POST /v1/selections", deps.Exams.Preview)
		mux.HandleFunc("GET /v1/subjects/detect", deps.Exams.DetectSubject)
		mux.HandleFunc("GET /v1/exams/{id}", deps.Exams.Get)
		mux.Handle("POST /v1/exams/{id}/questions", staffOnly(deps.Tokens, logger, http.HandlerFunc(deps.Exams.Assign)))
	}

	return withLogger(logger, mux)
}

func staffOnly(tokens auth.TokenValidator, logger zerolog.Logger, next http.Handler) http.Handler {
	if tokens == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeServiceUnavailable, "staff authentication is not configured")
		})
	}
	return auth.AuthMiddleware(tokens, logger)(auth.RequireStaff(next))
}

func withLogger(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.With().Str("method", r.Method).Str("path", r.URL.Path).Logger()
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))
		reqLogger.Debug().Dur("took", time.Since(start)).Msg("request served")
	})
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redis *redis.Client) error {
	if pool != nil {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
	}
	if redis != nil {
		if err := redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
