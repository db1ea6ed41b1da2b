package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/pkg/logger"
)

// Recovery turns a panic into a 500 body of the same shape ErrorHandler
// writes. The panic value and stack go to the log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			logger.Error(ctx, "panic recovered", "panic", rec, "stack", string(debug.Stack()))

			c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorBody(appctx.RequestID(ctx)))
		}()
		c.Next()
	}
}

func internalErrorBody(requestID string) gin.H {
	return gin.H{
		"code":    apperror.CodeInternal,
		"message": "Internal server error",
		"details": gin.H{"requestId": requestID},
	}
}
