package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cliphaven/clipdex/internal/config"
	dbRedis "github.com/cliphaven/clipdex/internal/db/redis"
	"github.com/cliphaven/clipdex/internal/domain/listing/token"
	logpkg "github.com/cliphaven/clipdex/internal/logger"
	"github.com/cliphaven/clipdex/internal/metrics"
	authorrepo "github.com/cliphaven/clipdex/internal/repository/author"
	commentrepo "github.com/cliphaven/clipdex/internal/repository/comment"
	videorepo "github.com/cliphaven/clipdex/internal/repository/video"
	chiTransport "github.com/cliphaven/clipdex/internal/transport/chi"
	commentuc "github.com/cliphaven/clipdex/internal/usecase/comment"
	healthuc "github.com/cliphaven/clipdex/internal/usecase/health"
	listinguc "github.com/cliphaven/clipdex/internal/usecase/listing"
	videouc "github.com/cliphaven/clipdex/internal/usecase/video"
	"github.com/cliphaven/clipdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting clipdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register listing metrics explicitly (no init())
	metrics.RegisterListingMetrics()

	// Create repositories
	videoRepo := videorepo.New(store)
	commentRepo := commentrepo.New(store)
	authorRepo := authorrepo.New(store)

	// Bootstrap FT indexes (idempotent)
	if err := videoRepo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to create video index", zap.Error(err))
	}
	if err := commentRepo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to create comment index", zap.Error(err))
	}
	logger.Info("Search indexes ready")

	// Stop words: config override or built-in list
	stopWords := cfg.Listing.StopWords
	if len(stopWords) == 0 {
		stopWords = token.DefaultStopWords()
	}
	tokenizer := token.NewTokenizer(token.NewSet(stopWords))
	logger.Info("Tokenizer ready", zap.Int("stop_words", len(stopWords)))

	// Create use case services
	listingSvc := listinguc.New(videoRepo, commentRepo, authorRepo, tokenizer, metrics.ListingObserver{})
	videoSvc := videouc.New(videoRepo, authorRepo)
	commentSvc := commentuc.New(commentRepo, videoRepo)
	healthSvc := healthuc.New(store)

	// Create chi server
	server := chiTransport.NewServer(listingSvc, videoSvc, commentSvc, healthSvc, logger).
		WithPagination(cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
