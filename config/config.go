package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port            string
	GinMode         string
	StoreDriver     string
	DatabasePath    string
	SeedFile        string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", gin.DebugMode),
		StoreDriver:  getEnv("STORE_DRIVER", DriverMemory),
		DatabasePath: getEnv("DB_PATH", ":memory:"),
		SeedFile:     getEnv("SEED_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverSQLite, cfg.StoreDriver)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	return cfg, nil
}

// OpenDB opens the sqlite database at path. ":memory:" keeps everything in
// process memory; the pool is held to one connection so every query sees
// the same database.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
