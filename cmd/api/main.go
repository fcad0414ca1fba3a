package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loongsen/qcrelay/internal/config"
	"github.com/loongsen/qcrelay/internal/database"
	"github.com/loongsen/qcrelay/internal/docstore"
	"github.com/loongsen/qcrelay/internal/handlers"
	"github.com/loongsen/qcrelay/internal/logger"
	"github.com/loongsen/qcrelay/internal/services/inspection"
	"github.com/loongsen/qcrelay/internal/services/joborder"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Logger
	zlog, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// 3. Plant database pool (dials lazily, the health route reports connectivity)
	db, err := database.Connect(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Failed to configure database", zap.Error(err))
	}

	// 4. Document store, the credential is required at boot
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := docstore.Open(initCtx, cfg.DocStore, zlog)
	cancelInit()
	if err != nil {
		zlog.Fatal("Failed to initialise document store", zap.Error(err))
	}

	// 5. Services and router
	router := handlers.NewRouter(
		joborder.NewService(db.DB),
		inspection.NewService(store, cfg.DocStore.Collection),
		db,
		zlog,
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		zlog.Info("API server starting", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sig := <-shutdown
	zlog.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("HTTP server shutdown error", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		zlog.Error("Document store close error", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		zlog.Error("Database close error", zap.Error(err))
	}

	zlog.Info("Shutdown complete")
}
