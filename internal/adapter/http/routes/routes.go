package routes

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	_ "field_estimator/docs"
	"field_estimator/internal/adapter/http/dto/request"
	"field_estimator/internal/adapter/http/middleware"
	"field_estimator/internal/infrastructure/config"
	"field_estimator/internal/infrastructure/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run builds every dependency from cfg and serves the API until SIGINT or
// SIGTERM.
func Run(cfg config.AppConfig, log *zap.Logger) error {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := request.RegisterValidations(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close(log)

	engine := NewEngine(deps.handlers, deps.tokens, deps.metrics, log, cfg.CORSAllowedOrigins)
	router, err := graceful.New(engine, graceful.WithAddr(":"+cfg.APIPort))
	if err != nil {
		return err
	}
	defer router.Close()

	log.Info("[routes][startup] listening", zap.String("port", cfg.APIPort), zap.String("mode", cfg.Mode))
	if err := router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("[routes][shutdown] server stopped")
	return nil
}

// NewEngine assembles the middleware chain and every route.
func NewEngine(h Handlers, tokens middleware.TokenParser, m *metrics.Metrics, log *zap.Logger, origins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(log),
		middleware.AccessLog(),
		middleware.Recovery(),
		m.Middleware(),
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	engine.GET("/metrics", gin.WrapH(m.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterAPI(engine, h, tokens)
	return engine
}
