package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/pkg/logger"
)

// ErrorHandler renders the last error registered by a handler or middleware
// as {code, message, details}. Internal errors expose only the request id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ctx := c.Request.Context()
		err := c.Errors.Last().Err

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			logger.Error(ctx, "unhandled error", "error", err)
			c.JSON(http.StatusInternalServerError, internalErrorBody(appctx.RequestID(ctx)))
			return
		}

		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", "code", appErr.Code, "message", appErr.Message, "cause", appErr.Err)
		}
		if appErr.Code == apperror.CodeInternal {
			c.JSON(appErr.HTTPStatus, internalErrorBody(appctx.RequestID(ctx)))
			return
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		})
	}
}
