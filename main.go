package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ledger/bank"
	"go-ledger/config"
	"go-ledger/logging"
	"go-ledger/report"
	"go-ledger/server"
	"go-ledger/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/currency"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init("go-ledger", cfg.LogLevel, cfg.AppEnv)
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	b := bank.New(cfg.RoutingNumber, bank.Options{
		NumberBase: cfg.AccountNumberBase,
		MaxNumber:  cfg.MaxAccountNumber,
		Overdraft:  cfg.OverdraftLimit,
	})
	s := server.New(b, store.New(), report.NewFormatter(currency.MustParseISO(cfg.Currency)), logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(cfg.CORSAllowOrigins),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server started", "addr", addr, "routing_number", b.RoutingNumber())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
