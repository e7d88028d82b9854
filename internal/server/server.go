package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/alexnogueira4/side-take-home/internal/database"
	"github.com/alexnogueira4/side-take-home/internal/logger"
)

type Server struct {
	port int

	db database.Service
}

func NewServer(db database.Service) *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		logger.AppLogger.Error("Invalid port number, using default 8080",
			zap.Error(err),
			zap.String("port", os.Getenv("PORT")))
		port = 8080
	}

	s := &Server{
		port: port,
		db:   db,
	}

	logger.AppLogger.Info("Server initialization",
		zap.Int("port", port),
		zap.String("environment", os.Getenv("ENV")))

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
