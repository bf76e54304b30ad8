package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bookmanager/internal/admin"
	"bookmanager/internal/book"
	"bookmanager/internal/bookinfo"
	"bookmanager/internal/config"
	"bookmanager/internal/database"
	"bookmanager/internal/httpx"
	"bookmanager/internal/ingest"
	"bookmanager/internal/logging"
	"bookmanager/internal/lookup"
	"bookmanager/internal/metabox"
	"bookmanager/internal/metrics"
	"bookmanager/internal/platform/openlibrary"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadEnvFiles()
	cfg, err := config.Load(true)
	if err != nil {
		zap.L().Fatal("load config", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		zap.L().Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DBDriver != config.DriverPostgres {
		logger.Fatal("the api server needs postgres; sqlite and mysql are served by bookctl",
			zap.String("driver", cfg.DBDriver))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.OpenPostgres(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("cannot open database", zap.String("dsn", config.RedactDSN(cfg.DBDSN)), zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connection OK", zap.String("dsn", config.RedactDSN(cfg.DBDSN)))

	metrics.Register()

	isbnService := bookinfo.NewService(bookinfo.NewPostgresRepo(pool, cfg.DBTimeout), logger)
	bookService := book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout), isbnService, logger)
	olClient := openlibrary.NewClient("bookmanager/1.0", cfg.OpenLibraryRPS, 2, openlibrary.WithLogger(logger))

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	a := &app{
		cfg:         cfg,
		log:         logger,
		books:       book.NewHTTPHandler(bookService),
		metabox:     metabox.NewHTTPHandler(metabox.NewService(isbnService, logger), bookService, cfg.JWTSecret, cfg.NonceTTL, logger),
		admin:       admin.NewHTTPHandler(admin.NewService(isbnService, bookService), logger),
		lookup:      lookup.NewHTTPHandler(lookup.NewService(olClient), logger),
		ingest:      ingest.NewHTTPHandler(ingest.NewService(olClient, bookService, isbnService, logger)),
		rateLimiter: rateLimiter,
		ready:       pool.Ping,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      a.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
