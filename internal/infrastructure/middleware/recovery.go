package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into 500 responses carrying the request ID, so
// a customer report can be matched to the logged stack trace.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.Error("panic recovered",
				zap.Any("panic", r),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.ByteString("stack", debug.Stack()),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "internal server error",
				"code":       "INTERNAL_ERROR",
				"request_id": c.GetString(RequestIDKey),
			})
		}()
		c.Next()
	}
}
