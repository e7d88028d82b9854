package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/alexnogueira4/side-take-home/internal/database"
	"github.com/alexnogueira4/side-take-home/internal/logger"
	"github.com/alexnogueira4/side-take-home/internal/server"
)

func main() {
	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}

	db := database.New()
	srv := server.NewServer(db)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.AppLogger.Info("Server starting",
			zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.AppLogger.Fatal("Server failed to start",
				zap.Error(err))
		}
	}()

	<-quit
	logger.AppLogger.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.AppLogger.Fatal("Server forced to shutdown",
			zap.Error(err))
	}

	if err := db.Close(); err != nil {
		logger.AppLogger.Error("Failed to close database",
			zap.Error(err))
	}

	logger.AppLogger.Info("Server exited properly")
}
