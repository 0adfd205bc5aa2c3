package middleware

import (
	"net/http"

	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/observability"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 response and reports it to Sentry
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.WithContext(c).WithField("panic", recovered).Error("recovered from panic")
				observability.CapturePanic(recovered, map[string]string{
					"route":      c.FullPath(),
					"request_id": c.GetString(logger.RequestIDKey),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
