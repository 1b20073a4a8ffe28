package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

type LogConfig struct {
	Level       string
	Environment string
	ServiceName string
}

// InitLogger builds the process logger and installs it as zap's global.
func InitLogger(cfg LogConfig) *zap.Logger {
	var logConfig zap.Config
	if cfg.Environment == "production" {
		logConfig = zap.NewProductionConfig()
	} else {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	logConfig.Level.SetLevel(level)

	l, err := logConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	if cfg.ServiceName != "" {
		l = l.With(zap.String("service", cfg.ServiceName))
	}
	log = l
	zap.ReplaceGlobals(l)

	l.Info("logger initialized", zap.String("level", level.String()))
	return l
}

// GetLogger returns the process logger, falling back to a no-op logger
// when InitLogger was never called (tests).
func GetLogger() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

type ctxKey struct{}

func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger stored by the request-id
// middleware, or the process logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return GetLogger()
}
