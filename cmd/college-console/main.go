package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pribylovaa/college-console/internal/cache"
	"github.com/pribylovaa/college-console/internal/config"
	"github.com/pribylovaa/college-console/internal/live"
	"github.com/pribylovaa/college-console/internal/service"
	ccminio "github.com/pribylovaa/college-console/internal/storage/minio"
	ccmongo "github.com/pribylovaa/college-console/internal/storage/mongo"
	cchttp "github.com/pribylovaa/college-console/internal/transport/http"
	logctx "github.com/pribylovaa/college-console/pkg/log"
)

// Константы окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting college-console", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := ccmongo.New(dbCtx, cfg)
	dbCancel()
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("mongo_connected")

	s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
	files, err := ccminio.New(s3Ctx, cfg)
	s3Cancel()
	if err != nil {
		log.Error("minio_connect_failed", slog.String("err", err.Error()))
		_ = store.Close(context.Background())
		os.Exit(1)
	}
	log.Info("minio_connected")

	svc := service.New(store, files, *cfg)

	// Кэш счётчиков — опциональный: пустой REDIS_URL просто выключает его.
	var countsCache cache.CountsCache
	if cfg.Redis.URL != "" {
		countsCache, err = cache.NewRedisCache(cfg.Redis.URL, "")
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			_ = store.Close(context.Background())
			os.Exit(1)
		}
		svc.SetCountsCache(countsCache)
		log.Info("redis_connected")
	}

	seedCtx, seedCancel := context.WithTimeout(logctx.Into(rootCtx, log), 10*time.Second)
	err = svc.EnsureAdmin(seedCtx)
	seedCancel()
	if err != nil {
		log.Error("admin_seed_failed", slog.String("err", err.Error()))
		_ = store.Close(context.Background())
		os.Exit(1)
	}

	hub := live.New(store)
	go hub.Run(logctx.Into(rootCtx, log))

	router := cchttp.NewRouter(svc, hub, cchttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
	})

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_failed", slog.String("err", err.Error()))
	}
	shutdownCancel()

	if countsCache != nil {
		_ = countsCache.Close()
	}
	_ = store.Close(context.Background())

	log.Info("service_stopped")
}

// setupLogger — текстовый хендлер для local, JSON для dev/prod.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
