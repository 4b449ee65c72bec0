package config

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewLogger builds a JSON logger in release mode and a console logger otherwise.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	if cfg.GinMode == gin.ReleaseMode {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}
