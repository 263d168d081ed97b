package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecraft/internal/app"
	"codecraft/internal/config"
	"codecraft/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.NewZapLogger(cfg.App.Environment)
	defer func() { _ = zlog.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	container := app.NewContainer(cfg, zlog)
	bootstrap, cleanup, err := app.Bootstrap(ctx, container)
	if err != nil {
		zlog.Fatal("failed to bootstrap app", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			zlog.Error("cleanup error", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zlog.Fatal("invalid HTTP port", err)
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Error("server error", err)
		}
	case sig := <-sigCh:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
		stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Error("shutdown error", err)
		}
	}
}
