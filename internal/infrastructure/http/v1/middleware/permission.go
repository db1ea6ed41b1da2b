// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"github.com/gin-gonic/gin"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/core/security"
)

// RequirePermission aborts with 403 unless the caller holds permission.
// No role bypasses the check.
func RequirePermission(permission security.Permission) gin.HandlerFunc {
	return RequireAnyPermission(permission)
}

// RequireAnyPermission aborts with 403 unless the caller holds at least one
// of permissions.
func RequireAnyPermission(permissions ...security.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		for _, required := range permissions {
			if user.HasPermission(string(required)) {
				c.Next()
				return
			}
		}

		_ = c.Error(apperror.NewPermissionDenied(security.Strings(permissions...)...))
		c.Abort()
	}
}
