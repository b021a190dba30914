// Command simplexd serves the tableau solver over HTTP and keeps every solve
// with its full step history in the configured store.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tableau/internal/config"
	"github.com/katalvlaran/tableau/internal/logging"
	"github.com/katalvlaran/tableau/internal/server"
	"github.com/katalvlaran/tableau/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	slog.Info("configuration loaded", "config", cfg.String())

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Store.DSN, cfg.Store.MaxConns)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	srv := server.New(st, cfg)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := srv.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		return
	}
	<-done
}
