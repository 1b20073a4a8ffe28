package middleware

import (
	"time"

	"field_estimator/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		log := logger.FromContext(c.Request.Context())
		switch {
		case status >= 500:
			log.Error("[http][access] request", fields...)
		case status >= 400:
			log.Warn("[http][access] request", fields...)
		default:
			log.Info("[http][access] request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 and logs it with the request logger.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error("[http][recovery] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(500, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
	})
}
