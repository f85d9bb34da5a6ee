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

	"blog-backend/config"
	"blog-backend/di"
	"blog-backend/driver/blob_store"
	"blog-backend/driver/blog_db"
	"blog-backend/rest"
	"blog-backend/utils/logger"
	"blog-backend/utils/otel"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		logger.Logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Init()
		return fmt.Errorf("failed to load config: %w", err)
	}

	otelCfg := otel.ConfigFromEnv()
	logger.InitWithOTel(otelCfg.Enabled)
	logger.Logger.Info("starting blog-backend", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelProvider, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		return fmt.Errorf("failed to init otel provider: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelProvider.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Warn("otel shutdown failed", "error", err)
		}
	}()

	pool, err := blog_db.InitDBPool(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	blobStore, err := blob_store.NewLocalBlobStore(cfg.Storage.ThumbnailDir, cfg.Storage.MaxUploadBytes)
	if err != nil {
		return fmt.Errorf("failed to init blob store: %w", err)
	}

	container := di.NewApplicationComponents(pool, blobStore)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Logger.Info("http listen", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Logger.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
