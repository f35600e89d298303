package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with a generated id and logs the outcome
// once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Header("X-Request-Id", requestID)

		c.Next()

		logrus.WithFields(logrus.Fields{
			"requestId": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
		}).Info("Request completed")
	}
}
