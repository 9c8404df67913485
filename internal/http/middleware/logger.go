package middleware

import (
	"time"

	"becak/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request including request_id.
func Logger(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []logger.Field{
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Float64("latency_ms", float64(latency.Microseconds())/1000.0),
			logger.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			log.Error("[HTTP]", fields...)
			return
		}
		log.Info("[HTTP]", fields...)
	}
}
