package main

import (
	"os"

	"field_estimator/internal/adapter/http/routes"
	"field_estimator/internal/infrastructure/config"
	"field_estimator/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Field Estimator API
// @version         1.0
// @description     Multi-tenant estimating backend for field-service companies: jobs, pricing rules, totals and payments.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger(logger.LogConfig{Level: "info"}).Fatal("[main] invalid configuration", zap.Error(err))
	}

	log := logger.InitLogger(logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Mode,
		ServiceName: cfg.ServiceName,
	})
	defer func() { _ = log.Sync() }()

	if err := routes.Run(cfg, log); err != nil {
		log.Error("[main] server exited", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
