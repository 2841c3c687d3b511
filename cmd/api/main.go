package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"fxanalysis-service/internal/bootstrap"
	"fxanalysis-service/internal/config"
	httpserver "fxanalysis-service/internal/infrastructure/http"
	"fxanalysis-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	an := bootstrap.BuildAnalyzer(cfg)
	source := bootstrap.BuildSource(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The server starts even when the initial load fails; /readyz stays
	// 503 until a reload succeeds.
	if err := bootstrap.LoadSnapshot(ctx, source, an, cfg.RequestTimeout); err != nil {
		logger.Error("initial snapshot load failed", zap.Error(err))
	} else {
		pairs, _ := an.AvailablePairs()
		logger.Info("snapshot loaded", zap.Int("pairs", len(pairs)))
	}

	srv := httpserver.NewServer(an, source)
	server := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(srv),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if reloader := bootstrap.BuildReloader(cfg, source, an, logger); reloader != nil {
		g.Go(func() error {
			reloader.Start(gctx)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("server stopped")
}
