package database

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/alexnogueira4/side-take-home/internal/logger"
	"github.com/alexnogueira4/side-take-home/internal/model"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	// DB returns the underlying GORM database instance.
	DB() *gorm.DB
}

type service struct {
	db *gorm.DB
}

func (s *service) DB() *gorm.DB {
	return s.db
}

var (
	dbname     = os.Getenv("DB_DATABASE")
	password   = os.Getenv("DB_PASSWORD")
	username   = os.Getenv("DB_USERNAME")
	port       = os.Getenv("DB_PORT")
	host       = os.Getenv("DB_HOST")
	dbInstance *service
)

func New() Service {
	// Reuse Connection
	if dbInstance != nil {
		return dbInstance
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		username, password, host, port, dbname)

	logger.AppLogger.Info("Attempting database connection",
		zap.String("host", host),
		zap.String("port", port),
		zap.String("database", dbname))

	// SQL statements go to the query log, not stdout
	customLogger := gormLogger.New(
		&GormWriter{},
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		logger.AppLogger.Fatal("Database connection failed",
			zap.Error(err),
			zap.String("host", host),
			zap.String("database", dbname))
	}

	if err := db.AutoMigrate(&model.Property{}); err != nil {
		logger.AppLogger.Fatal("Database migration failed",
			zap.Error(err),
			zap.String("database", dbname))
	}

	logger.AppLogger.Info("Database connection established",
		zap.String("host", host),
		zap.String("database", dbname))

	dbInstance = &service{db: db}
	return dbInstance
}

// GormWriter routes GORM's log output through the query logger.
type GormWriter struct{}

func (w *GormWriter) Printf(format string, args ...interface{}) {
	logger.QueryLogger.Info(fmt.Sprintf(format, args...))
}

func (s *service) Health() map[string]string {
	stats := make(map[string]string)

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		logger.AppLogger.Error("Database health check failed - cannot get DB instance",
			zap.Error(err),
			zap.String("database", dbname))
		return stats
	}

	if err := sqlDB.Ping(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		logger.AppLogger.Error("Database health check failed - ping failed",
			zap.Error(err),
			zap.String("database", dbname))
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "Database connection is healthy"
	return stats
}

func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		logger.AppLogger.Error("Failed to get database instance for closure",
			zap.Error(err),
			zap.String("database", dbname))
		return err
	}

	if err := sqlDB.Close(); err != nil {
		logger.AppLogger.Error("Failed to close database connection",
			zap.Error(err),
			zap.String("database", dbname))
		return err
	}

	logger.AppLogger.Info("Database connection closed",
		zap.String("database", dbname))
	return nil
}
