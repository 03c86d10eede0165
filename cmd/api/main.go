package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jewelquote-service/internal/bootstrap"
	"jewelquote-service/internal/config"
	infraconfig "jewelquote-service/internal/infrastructure/config"
	httpserver "jewelquote-service/internal/infrastructure/http"
	"jewelquote-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

// Local stand-in for API Gateway: serves POST /quote over plain HTTP.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logx.L()
	defer func() { _ = logger.Sync() }()

	srv, cleanup, err := bootstrap.InitAPI(ctx)
	if err != nil {
		logger.Fatal("bootstrap api", zap.Error(err))
	}
	defer cleanup()

	addr := ":" + config.Load().Port
	server := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(srv),
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
