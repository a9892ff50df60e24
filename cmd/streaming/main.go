package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/internal/config"
	"github.com/PithLimb/StreamingServices/internal/menu"
	"github.com/PithLimb/StreamingServices/internal/store"
	_ "github.com/joho/godotenv/autoload"
	"go.opentelemetry.io/otel"
)

func main() {

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Failed to config.Load:", err)
		os.Exit(1)
	}
	logLevel, _ := cfg.SlogLevel()

	loggerShutdown, err := common.InitLogger(common.LoggerOptions{
		ServiceName:        cfg.ServiceName,
		ServiceVersion:     cfg.ServiceVersion,
		ServiceEnvironment: cfg.ServiceEnvironment,
		ExporterEndpoint:   cfg.ExporterEndpoint,
		Level:              logLevel,
		File:               cfg.LogFile,
	})
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Failed to common.InitLogger:", err)
		os.Exit(1)
	}

	instrumentationShutdown, err := common.InitInstrumentation(cfg.ServiceName, cfg.ServiceVersion, cfg.ServiceEnvironment, cfg.ExporterEndpoint)
	if err != nil {
		common.Log.Error("Failed to common.InitInstrumentation", "err", err)
		os.Exit(1)
	}

	gateway, err := store.Open(cfg)
	if err != nil {
		common.Log.Error("Failed to store.Open", "err", err, "store", cfg.Store)
		os.Exit(1)
	}

	ctx, span := otel.Tracer(cfg.ServiceName).Start(context.Background(), "streaming.Session")

	registry, err := store.LoadOrEmpty(ctx, gateway)
	if err != nil {
		fmt.Println("No saved data found or error loading data.")
	}
	common.Log.Info("Catalog ready", "store", cfg.Store, "services", registry.Len())

	done := make(chan error, 1)
	go func() {
		done <- menu.New(os.Stdin, os.Stdout, gateway).Run(ctx, registry)
	}()

	select {
	case err = <-done:
		if errors.Is(err, menu.ErrInputClosed) {
			common.Log.Warn("Input closed before exit, unsaved changes were discarded")
		} else if err != nil {
			common.Log.Error("Failed to menu.Menu.Run", "err", err)
		}
	case sig := <-quit:
		common.Log.Warn("Interrupted, unsaved changes were discarded", "signal", sig.String())
	}
	span.End()

	if err := gateway.Close(); err != nil {
		common.Log.Error("Failed to store.Gateway.Close", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	instrumentationShutdown(shutdownCtx)
	if err := loggerShutdown(shutdownCtx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Failed to flush logs:", err)
	}
}
